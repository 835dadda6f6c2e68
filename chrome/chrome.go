// Package chrome decides which parts of the page frame are shown for a path
// and holds the fixed content of the documentation hub.
package chrome

import (
	"strings"

	"github.com/penquinx/docsite/credits"
)

// DocsPrefix is the legacy documentation path.
const DocsPrefix = "/docs"

// Chrome computes the page frame for a site served under a base path.
type Chrome struct {
	base    string
	landing map[string]bool
}

// New returns the frame rules for documentation under base. sections are the
// carousel landing pages, which hide the topbar.
func New(base string, sections ...string) *Chrome {
	base = "/" + strings.Trim(base, "/")
	c := &Chrome{base: base, landing: map[string]bool{base: true}}
	for _, s := range sections {
		c.landing[base+"/"+strings.Trim(s, "/")] = true
	}
	return c
}

// Base returns the documentation base path.
func (c *Chrome) Base() string {
	return c.base
}

// ShowTopbar reports whether the documentation topbar is drawn on path.
func (c *Chrome) ShowTopbar(path string) bool {
	path = clean(path)
	return under(path, c.base) && !c.landing[path]
}

// ShowNavbar reports whether the marketing navbar is drawn on path.
func (c *Chrome) ShowNavbar(path string) bool {
	path = clean(path)
	return !under(path, DocsPrefix) && !under(path, c.base)
}

// Topbar is the data shown in the documentation topbar.
type Topbar struct {
	Credits  int
	Username string
	Greeting string
}

// NewTopbar reads the topbar values from s.
func NewTopbar(s credits.Store) Topbar {
	name := credits.Username(s)
	return Topbar{
		Credits:  credits.Balance(s),
		Username: name,
		Greeting: credits.Greeting(name),
	}
}

func clean(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// under reports whether path is prefix or lies below it.
func under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
