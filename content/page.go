package content

import (
	"html/template"
	"path"
	"strings"
	"time"
	"unicode"
)

// Page is a rendered documentation page.
type Page struct {
	Slug        []string
	Title       string
	Description string
	Template    string
	Date        time.Time
	Tags        []string
	Redirect    string
	Content     template.HTML
	TOC         []Heading
	ModTime     time.Time
	Source      string // file name within the library
}

// Heading is one entry in a page's table of contents.
type Heading struct {
	ID    string
	Title string
	Level int
}

// Key joins the slug into its string form; the root page has the empty key.
func (p *Page) Key() string {
	return strings.Join(p.Slug, "/")
}

// Published reports whether the page's date has passed.
func (p *Page) Published(now time.Time) bool {
	return !now.Before(p.Date)
}

// SlugFromFile converts a Markdown file name into the slug it is served at.
func SlugFromFile(name string) []string {
	name = strings.TrimSuffix(path.Clean(name), ".md")
	if name == "index" {
		return nil
	}
	name = strings.TrimSuffix(name, "/index")
	return SlugFromKey(name)
}

// SlugFromKey splits a slug key on "/", dropping empty segments.
func SlugFromKey(key string) []string {
	return strings.FieldsFunc(key, func(r rune) bool { return r == '/' })
}

// defaultTitle is used when a page has no title in its front matter.
func defaultTitle(slug []string) string {
	if len(slug) == 0 {
		return "Introduction"
	}
	s := strings.ReplaceAll(slug[len(slug)-1], "-", " ")
	r := []rune(s)
	for i := range r {
		if i == 0 || r[i-1] == ' ' {
			r[i] = unicode.ToUpper(r[i])
		}
	}
	return string(r)
}
