package docs

import (
	"strings"
	"unicode"
)

// Crumb is one element of a breadcrumb trail.
type Crumb struct {
	Label string
	Href  string
}

var (
	toolkitSlugs = set("arsenal", "reconnaissance", "methodology", "extensions", "writeups", "youtube-channels")
	basicsSlugs  = set("cyber-security-types", "common-job-roles", "get-started-with-infosec",
		"best-bug-bounty-platform", "best-infosec-writeups-website", "hacking-books", "cli-commands", "learn-wsl")
	followSlugs = set("twitter", "medium", "youtube", "discord", "security-gitbooks")
)

// Breadcrumbs returns the trail for the page with the given slug key. Every
// key gets exactly one trail, tried toolkit, basics, follow, then generic.
func (n *Navigator) Breadcrumbs(key string) []Crumb {
	trail := []Crumb{{Label: "Docs", Href: n.base}}
	switch {
	case key == "" || key == indexMarker:
		return append(trail,
			Crumb{Label: "Getting Started", Href: n.base},
			Crumb{Label: "Introduction", Href: n.base},
		)
	case toolkitSlugs[key]:
		trail = append(trail, Crumb{Label: "Bug Hunter's Toolkit", Href: n.Href("arsenal")})
	case basicsSlugs[key]:
		trail = append(trail, Crumb{Label: "Learn the Basics", Href: n.Href("cyber-security-types")})
	case followSlugs[key]:
		trail = append(trail, Crumb{Label: "Hackers to Follow", Href: n.Href("twitter")})
	}
	return append(trail, Crumb{Label: Title(key), Href: n.Href(key)})
}

var titles = map[string]string{
	"index":                         "Introduction",
	"arsenal":                       "Arsenal",
	"reconnaissance":                "Reconnaissance",
	"methodology":                   "Methodology",
	"extensions":                    "Extensions",
	"writeups":                      "Writeups",
	"youtube-channels":              "YouTube Channels",
	"cyber-security-types":          "Cyber Security Types",
	"common-job-roles":              "Common Job Roles",
	"get-started-with-infosec":      "Get Started with Infosec",
	"best-bug-bounty-platform":      "Best Bug Bounty Platform",
	"best-infosec-writeups-website": "Best Infosec Writeups Website",
	"hacking-books":                 "Hacking Books",
	"cli-commands":                  "CLI Commands",
	"learn-wsl":                     "Learn WSL",
	"twitter":                       "Twitter",
	"medium":                        "Medium",
	"youtube":                       "YouTube",
	"discord":                       "Discord",
	"security-gitbooks":             "Security GitBooks",
}

// Title returns the display title of a slug key: the known title if there is
// one, otherwise the key with hyphens as spaces and each word capitalized.
func Title(key string) string {
	if t, ok := titles[key]; ok {
		return t
	}
	if key == "" {
		return "Introduction"
	}
	r := []rune(strings.ReplaceAll(key, "-", " "))
	for i := range r {
		if isWordRune(r[i]) && (i == 0 || !isWordRune(r[i-1])) {
			r[i] = unicode.ToUpper(r[i])
		}
	}
	return string(r)
}

func isWordRune(r rune) bool {
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func set(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}
