package web

import (
	"net/http"
)

// RenderFunc writes a complete error response with the given status.
type RenderFunc func(w http.ResponseWriter, r *http.Request, status int)

// ErrorHandler captures 404 and 500 responses from h and replaces their body
// with the output of render.
func ErrorHandler(h http.Handler, render RenderFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseWriter{
			ResponseWriter: w,
			r:              r,
			render:         render,
		}
		h.ServeHTTP(writer, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	r       *http.Request
	render  RenderFunc
	noWrite bool
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.noWrite {
		return
	}
	if statusCode == http.StatusNotFound || statusCode == http.StatusInternalServerError {
		// the file server has already set headers for its own plain text body
		w.Header().Del("Content-Type")
		w.Header().Del("X-Content-Type-Options")
		w.noWrite = true
		w.render(w.ResponseWriter, w.r, statusCode)
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
