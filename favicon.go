package main

import (
	"errors"
	"io/fs"
	"net/http"
)

// favicon redirects to the icon in the static folder.
func (s *site) favicon(w http.ResponseWriter, r *http.Request) {
	_, err := fs.Stat(s.static, "favicon.ico")
	if errors.Is(err, fs.ErrNotExist) {
		s.notFound(w, r)
		return
	} else if err != nil {
		s.serverError(w, r, err.Error())
		return
	}
	http.Redirect(w, r, staticPrefix+"favicon.ico", http.StatusPermanentRedirect)
}
