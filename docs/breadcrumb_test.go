package docs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBreadcrumbs(t *testing.T) {
	nav := New(pages{})
	tests := []struct {
		key  string
		want []Crumb
	}{
		{"", []Crumb{{"Docs", "/v1"}, {"Getting Started", "/v1"}, {"Introduction", "/v1"}}},
		{"index", []Crumb{{"Docs", "/v1"}, {"Getting Started", "/v1"}, {"Introduction", "/v1"}}},
		{"youtube-channels", []Crumb{{"Docs", "/v1"}, {"Bug Hunter's Toolkit", "/v1/arsenal"}, {"YouTube Channels", "/v1/youtube-channels"}}},
		{"learn-wsl", []Crumb{{"Docs", "/v1"}, {"Learn the Basics", "/v1/cyber-security-types"}, {"Learn WSL", "/v1/learn-wsl"}}},
		{"security-gitbooks", []Crumb{{"Docs", "/v1"}, {"Hackers to Follow", "/v1/twitter"}, {"Security GitBooks", "/v1/security-gitbooks"}}},
		{"getting-started", []Crumb{{"Docs", "/v1"}, {"Getting Started", "/v1/getting-started"}}},
		{"red-team-ops", []Crumb{{"Docs", "/v1"}, {"Red Team Ops", "/v1/red-team-ops"}}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, nav.Breadcrumbs(tt.key)); diff != "" {
			t.Errorf("Breadcrumbs(%q) mismatch (-want +got):\n%s", tt.key, diff)
		}
	}
}

func TestBreadcrumbsTotal(t *testing.T) {
	nav := New(pages{})
	for _, key := range append(OrderedSlugs(), "unknown", "a/b", "x-1") {
		trail := nav.Breadcrumbs(key)
		if assert.NotEmpty(t, trail, key) {
			assert.Equal(t, "Docs", trail[0].Label, key)
		}
	}
}

func TestBreadcrumbSetsAreDisjoint(t *testing.T) {
	for k := range toolkitSlugs {
		assert.False(t, basicsSlugs[k] || followSlugs[k], k)
	}
	for k := range basicsSlugs {
		assert.False(t, followSlugs[k], k)
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"":                  "Introduction",
		"cli-commands":      "CLI Commands",
		"youtube":           "YouTube",
		"bug-bounty-101":    "Bug Bounty 101",
		"getting-started":   "Getting Started",
		"tools/burp-suite":  "Tools/Burp Suite",
		"already-Uppercase": "Already Uppercase",
	}
	for in, want := range tests {
		assert.Equal(t, want, Title(in), in)
	}
}
