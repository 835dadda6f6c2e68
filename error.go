package main

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"
)

// serverError is a handler for rendering our error page.
func (s *site) serverError(w http.ResponseWriter, r *http.Request, errMsg string) {
	d := &data{Title: "Server Error", Status: http.StatusInternalServerError, Message: errMsg}
	d.Path = r.URL.Path
	d.Base = s.cfg.BasePath
	var buf bytes.Buffer
	err := s.tpl.ExecuteTemplate(&buf, "error", d)
	if err != nil {
		s.logger.Error("Cannot render error page", zap.Error(err))
		http.Error(w, errMsg, http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusInternalServerError, buf.Bytes())
}
