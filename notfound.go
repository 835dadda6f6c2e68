package main

import (
	"bytes"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// notFound is a handler for rendering our 404 page.
func (s *site) notFound(w http.ResponseWriter, r *http.Request) {
	d := &data{Title: "Page Not Found", Status: http.StatusNotFound}
	s.frame(w, r, d)
	var buf bytes.Buffer
	err := s.tpl.ExecuteTemplate(&buf, "notfound", d)
	if err != nil {
		s.logger.Error("Cannot render notfound", zap.Error(err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintln(w, http.StatusText(http.StatusNotFound))
		return
	}
	writeHTML(w, http.StatusNotFound, buf.Bytes())
}
