package docs

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/penquinx/docsite/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pages is a Source backed by a list of slug keys in enumeration order.
type pages []string

func (p pages) Page(slug []string) (*content.Page, bool) {
	key := strings.Join(slug, "/")
	for _, k := range p {
		if k == key {
			return &content.Page{Slug: slug, Title: "Page " + key}, true
		}
	}
	return nil, false
}

func (p pages) Params() [][]string {
	r := make([][]string, len(p))
	for i, k := range p {
		r[i] = splitKey(k)
	}
	return r
}

func metaFS(body string) fstest.MapFS {
	return fstest.MapFS{MetaFile: {Data: []byte(body)}}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want []string
	}{
		{nil, nil},
		{[]string{"getting-started", "index"}, []string{"getting-started"}},
		{[]string{"learn-the-basics", "index"}, []string{"learn-the-basics"}},
		{[]string{"arsenal", "index"}, []string{"arsenal", "index"}},
		{[]string{"getting-started", "index", "x"}, []string{"getting-started", "index", "x"}},
		{[]string{"getting-started"}, []string{"getting-started"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Normalize(tt.in)); diff != "" {
			t.Errorf("Normalize(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestResolve(t *testing.T) {
	nav := New(pages{"", "getting-started", "arsenal"})

	a, err := nav.Resolve([]string{"getting-started", "index"})
	require.NoError(t, err)
	b, err := nav.Resolve([]string{"getting-started"})
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.Key(), "both index forms resolve to the same page")

	root, err := nav.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "", root.Key())

	_, err = nav.Resolve([]string{"missing"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOrderFiltersMissing(t *testing.T) {
	nav := New(pages{"", "reconnaissance"}, WithOrder([]string{"", "arsenal", "reconnaissance"}))

	order, tier := nav.Order("")
	assert.Equal(t, []string{"", "reconnaissance"}, order)
	assert.Equal(t, TierExplicit, tier)

	prev, next := nav.Neighbors("")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "reconnaissance", next.Slug)
	assert.Equal(t, "/v1/reconnaissance", next.Href)
	assert.Equal(t, "Page reconnaissance", next.Title)
}

func TestOrderPreservesCanonicalOrder(t *testing.T) {
	// every other canonical page exists, listed out of order
	var src pages
	for i := len(orderedSlugs) - 1; i >= 0; i -= 2 {
		src = append(src, orderedSlugs[i])
	}
	nav := New(src)
	order, tier := nav.Order(src[0])
	require.Equal(t, TierExplicit, tier)
	require.Len(t, order, len(src))
	last := -1
	for _, s := range order {
		i := index(orderedSlugs, s)
		assert.Greater(t, i, last, "%q is out of canonical order", s)
		last = i
	}
}

func TestOrderBoundaries(t *testing.T) {
	nav := New(pages(orderedSlugs))

	prev, next := nav.Neighbors("")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "arsenal", next.Slug)

	prev, next = nav.Neighbors("security-gitbooks")
	require.NotNil(t, prev)
	assert.Equal(t, "discord", prev.Slug)
	assert.Nil(t, next)

	prev, next = nav.Neighbors("learn-wsl")
	assert.Equal(t, "cli-commands", prev.Slug)
	assert.Equal(t, "twitter", next.Slug)
}

func TestOrderFallsBackToMeta(t *testing.T) {
	src := pages{"", "getting-started", "getting-started/install", "arsenal"}
	nav := New(src, WithMeta(metaFS(`{"pages": ["---Guide---", "getting-started", "...", "getting-started/install", "gone", 7]}`)))

	order, tier := nav.Order("getting-started/install")
	assert.Equal(t, TierMeta, tier)
	assert.Equal(t, []string{"getting-started", "getting-started/install"}, order)

	prev, next := nav.Neighbors("getting-started/install")
	require.NotNil(t, prev)
	assert.Equal(t, "getting-started", prev.Slug)
	assert.Nil(t, next)
}

func TestOrderFallsBackToDiscovered(t *testing.T) {
	src := pages{"zeta", "", "alpha"}
	tests := map[string]fstest.MapFS{
		"no meta":        nil,
		"malformed meta": metaFS(`{"pages": [`),
		"wrong shape":    metaFS(`{"pages": "arsenal"}`),
		"meta without":   metaFS(`{"pages": ["alpha"]}`),
	}
	for name, fsys := range tests {
		var opts []Option
		if fsys != nil {
			opts = append(opts, WithMeta(fsys))
		}
		nav := New(src, opts...)
		order, tier := nav.Order("zeta")
		assert.Equal(t, TierDiscovered, tier, name)
		assert.Equal(t, []string{"zeta", "", "alpha"}, order, name)

		prev, next := nav.Neighbors("zeta")
		assert.Nil(t, prev, name)
		assert.Equal(t, "", next.Slug, name)
		assert.Equal(t, "/v1", next.Href, name)
	}
}

func TestGettingStartedHidesRootPrevious(t *testing.T) {
	src := pages{"", "getting-started", "arsenal"}
	nav := New(src, WithOrder([]string{"", "getting-started", "arsenal"}))

	prev, next := nav.Neighbors("getting-started")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "arsenal", next.Slug)

	// other pages still link back to the root
	prev, _ = New(src, WithOrder([]string{"", "arsenal"})).Neighbors("arsenal")
	require.NotNil(t, prev)
	assert.Equal(t, "", prev.Slug)
}

func TestNeighborsUnknown(t *testing.T) {
	nav := New(pages{"", "arsenal"})
	prev, next := nav.Neighbors("nowhere")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestCheck(t *testing.T) {
	nav := New(pages{"", "arsenal"}, WithOrder([]string{"", "arsenal", "medium", "discord"}))
	assert.Equal(t, []string{"medium", "discord"}, nav.Check())
	assert.Empty(t, New(pages(orderedSlugs)).Check())
}

func TestView(t *testing.T) {
	nav := New(pages(orderedSlugs), WithBasePath("/docs/"))
	v, err := nav.View([]string{"arsenal"})
	require.NoError(t, err)
	assert.Equal(t, "arsenal", v.Key)
	assert.Equal(t, "Page arsenal", v.Page.Title)
	assert.Equal(t, TierExplicit, v.Tier)
	assert.Equal(t, "/docs", v.Prev.Href)
	assert.Equal(t, "/docs/reconnaissance", v.Next.Href)
	assert.Equal(t, "Bug Hunter's Toolkit", v.Crumbs[1].Label)

	_, err = nav.View([]string{"nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderedSlugsIsACopy(t *testing.T) {
	s := OrderedSlugs()
	s[1] = "changed"
	assert.Equal(t, "arsenal", OrderedSlugs()[1])
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "explicit", TierExplicit.String())
	assert.Equal(t, "meta", TierMeta.String())
	assert.Equal(t, "discovered", TierDiscovered.String())
	assert.Equal(t, "unknown", Tier(9).String())
}
