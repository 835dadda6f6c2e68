package web

import (
	"net/http"
	"strings"
	"time"
)

var gmtZone *time.Location

func init() {
	var err error
	gmtZone, err = time.LoadLocation("GMT")
	if err != nil {
		gmtZone = time.UTC
	}
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// ExpiresHandler sets the Expires header, using staticExpires for paths under
// staticPrefix and expires for everything else. A zero duration sets nothing.
func ExpiresHandler(h http.Handler, staticPrefix string, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := expires
		if staticPrefix != "" && strings.HasPrefix(r.URL.Path, staticPrefix) {
			expiry = staticExpires
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmtZone).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}
