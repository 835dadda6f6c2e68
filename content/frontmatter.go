package content

import (
	"regexp"
	"strings"
	"time"
)

// FrontMatter holds data scraped from a Markdown page.
type FrontMatter struct {
	Title       string    `toml:"title"`       // Title of this page
	Description string    `toml:"description"` // Lead paragraph under the title
	Date        time.Time `toml:"date"`        // Date the page appears
	Template    string    `toml:"template"`    // The name of the template to use
	Tags        []string  `toml:"tags"`        // Tags to assign to this page
	Redirect    string    `toml:"redirect"`    // Issue a redirect to another location
}

// fmRegexp is the regular expression used to split out front matter.
var fmRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)

// extractFrontMatter splits the front matter and Markdown content.
func extractFrontMatter(x []byte) (fm, r []byte) {
	subs := fmRegexp.Split(string(x), 3)
	if len(subs) != 3 {
		return nil, x
	}
	if s := strings.TrimSpace(subs[0]); len(s) > 0 {
		return nil, x
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2]))
}
