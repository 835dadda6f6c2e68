package web

import (
	"net/http"
	"strings"
)

// PrefixRedirect permanently redirects requests under from to the same path
// under to, keeping the query string. The method and body are preserved.
func PrefixRedirect(from, to string) http.Handler {
	from = strings.TrimSuffix(from, "/")
	to = strings.TrimSuffix(to, "/")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, from)
		if rest == r.URL.Path {
			http.NotFound(w, r)
			return
		}
		if rest != "" && rest[0] != '/' {
			http.NotFound(w, r)
			return
		}
		target := to + strings.TrimSuffix(rest, "/")
		if target == "" {
			target = "/"
		}
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusPermanentRedirect)
	})
}
