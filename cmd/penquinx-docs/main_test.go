package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { verbose = false })
	err := rootCmd.Execute()
	return out.String(), err
}

var smallSite = map[string]string{
	"docs/index.md":                 "Welcome.",
	"docs/getting-started/index.md": "+++\ntitle = \"Introduction\"\n+++\nStart.",
	"docs/arsenal.md":               "+++\ntitle = \"Arsenal\"\n+++\nTools.",
	"docs/learn-wsl.md":             "WSL.",
	"carousels.yaml": `
- name: bug-hunting-toolkit
  label: Bug Hunter's Toolkit
  items:
    - slug: arsenal
      title: Arsenal
- name: getting-started
  label: Getting Started
  single: true
  items:
    - slug: getting-started/index
      title: Introduction
`,
}

func TestCheck(t *testing.T) {
	dir := writeSite(t, smallSite)
	out, err := run(t, "check", "--root", dir)
	require.Error(t, err)
	assert.Contains(t, out, `order: "reconnaissance" has no page`)
	assert.NotContains(t, out, `"arsenal"`)
	assert.NotContains(t, out, "carousel")
	assert.Contains(t, err.Error(), "problems found")
}

func TestCheckCarousel(t *testing.T) {
	files := map[string]string{
		"docs/arsenal.md": "Tools.",
		"carousels.yaml":  "- name: x\n  label: X\n  items:\n    - slug: gone\n      title: Gone\n",
	}
	out, err := run(t, "check", "--root", writeSite(t, files))
	require.Error(t, err)
	assert.Contains(t, out, `carousel x: "gone" has no page`)
}

func TestOrder(t *testing.T) {
	dir := writeSite(t, smallSite)

	out, err := run(t, "order", "arsenal", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "tier: explicit")
	assert.Contains(t, out, "* arsenal\n")
	assert.Contains(t, out, "prev: /v1\n")
	assert.Contains(t, out, "next: /v1/learn-wsl\n")

	out, err = run(t, "order", "/getting-started/index", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "tier: discovered")
	assert.Contains(t, out, "* getting-started\n")
	// discovered order follows the file walk: arsenal.md, getting-started/index.md, index.md
	assert.Contains(t, out, "prev: /v1/arsenal\n")
	assert.Contains(t, out, "next: /v1\n")
}

func TestCrumbs(t *testing.T) {
	dir := writeSite(t, smallSite)

	out, err := run(t, "crumbs", "learn-wsl", "--root", dir)
	require.NoError(t, err)
	assert.Equal(t, "Docs -> /v1\nLearn the Basics -> /v1/cyber-security-types\nLearn WSL -> /v1/learn-wsl\n", out)

	_, err = run(t, "crumbs", "nope", "--root", dir)
	assert.Error(t, err)
}

func TestPagesAndSitemap(t *testing.T) {
	dir := writeSite(t, smallSite)

	out, err := run(t, "pages", "--root", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "SLUG"))

	out, err = run(t, "sitemap", "--root", dir, "--host", "https://penquinx.dev/")
	require.NoError(t, err)
	assert.Contains(t, out, "https://penquinx.dev/v1/arsenal\n")
	assert.Contains(t, out, "https://penquinx.dev/v1/getting-started\n")
}

func TestRenderTable(t *testing.T) {
	out := renderTable([][]string{
		{"SLUG", "NEXT"},
		{"arsenal", "-"},
	})
	assert.Equal(t, "SLUG     NEXT\narsenal  -\n", out)
	assert.Empty(t, renderTable(nil))
}
