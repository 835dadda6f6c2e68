// Package docs resolves documentation pages by slug and places them in the
// reading order, producing breadcrumbs and previous/next links.
package docs

import (
	"errors"
	"strings"

	"github.com/penquinx/docsite/content"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a slug does not resolve to a page.
var ErrNotFound = errors.New("page not found")

// Section names. Each has a carousel landing page and may have an index document.
const (
	GettingStarted    = "getting-started"
	BugHuntingToolkit = "bug-hunting-toolkit"
	LearnTheBasics    = "learn-the-basics"
	HackersToFollow   = "hackers-to-follow"
)

// Sections lists the known section names.
var Sections = []string{GettingStarted, BugHuntingToolkit, LearnTheBasics, HackersToFollow}

// indexMarker is the last segment links use to address a section's index document.
const indexMarker = "index"

// Source is the set of pages the navigator works over.
type Source interface {
	Page(slug []string) (*content.Page, bool)
	Params() [][]string
}

// MetaSource reads supporting files such as meta.json.
type MetaSource interface {
	ReadFile(name string) ([]byte, error)
}

// Navigator maps slugs to pages and to their place in the reading order.
type Navigator struct {
	src     Source
	meta    MetaSource
	base    string
	ordered []string
	logger  *zap.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithMeta reads the fallback order from meta.json in src.
func WithMeta(src MetaSource) Option {
	return func(n *Navigator) { n.meta = src }
}

// WithBasePath sets the URL prefix of documentation links. The default is "/v1".
func WithBasePath(base string) Option {
	return func(n *Navigator) { n.base = strings.TrimSuffix(base, "/") }
}

// WithOrder replaces the canonical reading order.
func WithOrder(slugs []string) Option {
	return func(n *Navigator) { n.ordered = append([]string(nil), slugs...) }
}

// WithLogger sets the logger used for degraded fallbacks.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Navigator) { n.logger = logger }
}

// New returns a Navigator over src.
func New(src Source, opts ...Option) *Navigator {
	n := &Navigator{
		src:     src,
		base:    "/v1",
		ordered: orderedSlugs,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// BasePath returns the URL prefix of documentation links.
func (n *Navigator) BasePath() string {
	return n.base
}

// Normalize maps [section, "index"] to [section] so both forms of a section's
// index document address the same page. Other slugs are returned unchanged.
func Normalize(slug []string) []string {
	if len(slug) == 2 && slug[1] == indexMarker && isSection(slug[0]) {
		return slug[:1]
	}
	return slug
}

// Resolve returns the page for slug after normalization.
func (n *Navigator) Resolve(slug []string) (*content.Page, error) {
	p, ok := n.src.Page(Normalize(slug))
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// View is everything needed to render a documentation page.
type View struct {
	Page   *content.Page
	Key    string // normalized slug key
	Crumbs []Crumb
	Prev   *Link
	Next   *Link
	Tier   Tier
}

// View resolves slug and computes its breadcrumbs and neighbours.
func (n *Navigator) View(slug []string) (*View, error) {
	p, err := n.Resolve(slug)
	if err != nil {
		return nil, err
	}
	key := joinSlug(Normalize(slug))
	v := &View{
		Page:   p,
		Key:    key,
		Crumbs: n.Breadcrumbs(key),
	}
	_, v.Tier = n.Order(key)
	v.Prev, v.Next = n.Neighbors(key)
	return v, nil
}

// Link points at another documentation page.
type Link struct {
	Slug  string
	Title string
	Href  string
}

func (n *Navigator) link(key string) *Link {
	l := &Link{Slug: key, Title: Title(key), Href: n.Href(key)}
	if p, ok := n.src.Page(splitKey(key)); ok && p.Title != "" {
		l.Title = p.Title
	}
	return l
}

// Href returns the URL of the page with the given slug key.
func (n *Navigator) Href(key string) string {
	if key == "" {
		return n.base
	}
	return n.base + "/" + key
}

func (n *Navigator) exists(key string) bool {
	_, ok := n.src.Page(splitKey(key))
	return ok
}

func isSection(s string) bool {
	for _, sec := range Sections {
		if s == sec {
			return true
		}
	}
	return false
}

func joinSlug(slug []string) string {
	return strings.Join(slug, "/")
}

func splitKey(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, "/")
}
