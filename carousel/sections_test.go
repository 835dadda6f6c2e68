package carousel

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultSections(t *testing.T) {
	sections, err := LoadSections(fstest.MapFS{}, "/v1/")
	require.NoError(t, err)

	var names []string
	for _, s := range sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"getting-started", "bug-hunting-toolkit", "learn-the-basics", "hackers-to-follow"}, names)

	toolkit, ok := Find(sections, "bug-hunting-toolkit")
	require.True(t, ok)
	require.Len(t, toolkit.Items, 6)
	assert.Equal(t, "/v1/arsenal", toolkit.Items[0].Href)
	assert.Equal(t, "Bug Hunter's Toolkit", toolkit.Label)

	basics, _ := Find(sections, "learn-the-basics")
	assert.Len(t, basics.Items, 8)
	follow, _ := Find(sections, "hackers-to-follow")
	assert.Len(t, follow.Items, 5)

	gs, _ := Find(sections, "getting-started")
	assert.True(t, gs.Carousel().Single())
	assert.Equal(t, "/v1/getting-started/index", gs.Items[0].Href)

	_, ok = Find(sections, "nope")
	assert.False(t, ok)
}

func TestLoadSectionsOverride(t *testing.T) {
	fsys := fstest.MapFS{SectionsFile: {Data: []byte(`
- name: tools
  label: Tools
  items:
    - slug: arsenal
      title: Arsenal
`)}}
	sections, err := LoadSections(fsys, "/docs-v2")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "/docs-v2/arsenal", sections[0].Items[0].Href)
}

func TestLoadSectionsInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":       "- name: [",
		"missing item": "- name: a\n  label: A\n  items:\n    - slug: x\n",
		"no label":     "- name: a\n",
		"duplicate":    "- name: a\n  label: A\n- name: a\n  label: B\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSections(fstest.MapFS{SectionsFile: {Data: []byte(body)}}, "/v1")
			assert.Error(t, err)
		})
	}
}
