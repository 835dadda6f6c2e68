package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"text/template"

	"go.uber.org/zap"
)

// sitemapFile overrides the built-in sitemap template when present at the site root.
const sitemapFile = "sitemap.txt"

// loadSitemapTemplate loads the sitemap.txt template from the site root,
// falling back to the built-in one.
func loadSitemapTemplate(root fs.FS) (*template.Template, error) {
	b, err := fs.ReadFile(root, sitemapFile)
	if errors.Is(err, fs.ErrNotExist) {
		b, err = fs.ReadFile(defaultTemplates, "templates/"+sitemapFile)
	}
	if err != nil {
		return nil, fmt.Errorf("loadSitemapTemplate: %w", err)
	}
	t, err := template.New("sitemap").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("loadSitemapTemplate: %w", err)
	}
	return t, nil
}

// sitemapData is passed to the sitemap template.
type sitemapData struct {
	Host string   // scheme and host of the request
	URLs []string // site-relative paths
}

// sitemapURLs lists the hub, the carousel landing pages and every published
// document. Documents are listed in reading order first, then any others in
// enumeration order.
func (s *site) sitemapURLs() []string {
	base := s.cfg.BasePath
	urls := []string{base}
	seen := map[string]bool{base: true}
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, sec := range s.sections {
		add(base + "/" + sec.Name)
	}
	for _, k := range s.lib.Keys() {
		add(s.nav.Href(k))
	}
	return urls
}

// sitemapText is an http.HandlerFunc that renders the site map.
func (s *site) sitemapText(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	d := sitemapData{Host: scheme + "://" + r.Host, URLs: s.sitemapURLs()}
	var out bytes.Buffer
	err := s.sitemap.Execute(&out, d)
	if err != nil {
		s.logger.Error("sitemap", zap.Error(err))
		s.serverError(w, r, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, sitemapFile, s.modTime(), bytes.NewReader(out.Bytes()))
}
