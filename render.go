package main

import (
	"bytes"
	"net/http"

	"github.com/penquinx/docsite/chrome"
	"github.com/penquinx/docsite/credits"
	"go.uber.org/zap"
)

// render executes the named page template into a buffer and writes it with
// the given status. Template failures become a server error page.
func (s *site) render(w http.ResponseWriter, r *http.Request, status int, name string, d *data) {
	s.frame(w, r, d)
	var buf bytes.Buffer
	err := s.tpl.ExecuteTemplate(&buf, name, d)
	if err != nil {
		s.logger.Error("Cannot render page", zap.String("template", name), zap.String("path", r.URL.Path), zap.Error(err))
		s.serverError(w, r, err.Error())
		return
	}
	writeHTML(w, status, buf.Bytes())
}

// frame fills in the page chrome for the request. Pages with a topbar are
// built from the visitor's cookies and must not be stored by shared caches.
func (s *site) frame(w http.ResponseWriter, r *http.Request, d *data) {
	d.Path = r.URL.Path
	d.Base = s.cfg.BasePath
	d.Navbar = s.chrome.ShowNavbar(d.Path)
	if s.chrome.ShowTopbar(d.Path) {
		tb := chrome.NewTopbar(credits.NewCookieStore(w, r, "/"))
		d.Topbar = &tb
		h := w.Header()
		h.Del("Expires")
		h.Set("Cache-Control", "private, no-cache")
		h.Add("Vary", "Cookie")
	}
}

// renderStatus renders the not found or error page for status.
func (s *site) renderStatus(w http.ResponseWriter, r *http.Request, status int) {
	if status == http.StatusNotFound {
		s.notFound(w, r)
		return
	}
	s.serverError(w, r, http.StatusText(status))
}

func writeHTML(w http.ResponseWriter, status int, b []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	w.Write(b)
}
