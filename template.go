package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/penquinx/docsite/carousel"
	"github.com/penquinx/docsite/chrome"
	"github.com/penquinx/docsite/credits"
	"github.com/penquinx/docsite/docs"
)

//go:embed templates/*.html templates/sitemap.txt
var defaultTemplates embed.FS

// data is what is passed to page templates.
type data struct {
	Title       string
	Description string
	Path        string // request path
	Base        string // documentation base path
	Navbar      bool
	Topbar      *chrome.Topbar // nil when hidden

	Doc     *docs.View
	Article template.HTML // rendered article fragment

	Section  *carousel.Section
	Slides   []carousel.Slide
	Index    int
	PrevHref string
	NextHref string

	Cards []chrome.Card

	Modal   *credits.Modal
	Rows    [][]credits.Package
	Receipt *credits.Receipt

	Status  int
	Message string // passed to error or 404 templates
}

// loadTemplates parses the built-in templates and then any *.html files in
// the site's template folder, which replace built-in definitions of the same
// name. It also returns the newest modification time of the site templates.
func loadTemplates(root fs.FS) (*template.Template, time.Time, error) {
	var modTime time.Time
	funcMap := template.FuncMap{
		"join":       path.Join,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"title":      docs.Title,
		"add":        func(a, b int) int { return a + b },
		"year":       func() int { return time.Now().Year() },
	}
	tpl, err := template.New("penquinx").Funcs(funcMap).ParseFS(defaultTemplates, "templates/*.html")
	if err != nil {
		return nil, modTime, fmt.Errorf("loadTemplates: %w", err)
	}
	matches, err := fs.Glob(root, templateFolder+"/*.html")
	if err != nil {
		return nil, modTime, fmt.Errorf("loadTemplates: %w", err)
	}
	if len(matches) == 0 {
		return tpl, modTime, nil
	}
	for _, m := range matches {
		fi, err := fs.Stat(root, m)
		if err != nil {
			return nil, modTime, fmt.Errorf("loadTemplates: %w", err)
		}
		if fi.ModTime().After(modTime) {
			modTime = fi.ModTime()
		}
	}
	tpl, err = tpl.ParseFS(root, matches...)
	if err != nil {
		return nil, modTime, fmt.Errorf("loadTemplates: %w", err)
	}
	return tpl, modTime, nil
}
