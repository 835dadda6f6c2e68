/*
content implements the document library behind the documentation hub. It
walks an fs.FS of Markdown files, renders each one into HTML, and indexes the
results by slug so that pages can be looked up without touching the file
system again.

# Slugs

A slug is the path of a Markdown file without its ".md" extension, split on
"/". A file named "index.md" addresses its folder, so "index.md" at the root
has the empty slug and "getting-started/index.md" has the slug
["getting-started"].

Hidden files and folders (those starting with ".") are ignored.

# Front Matter

Markdown files may contain front matter which is in TOML format. The front
matter is delimited by "+++" at the start and end. For example:

	+++
	title = "Reconnaissance"
	description = "Discover, enumerate, and profile targets."
	+++
	## Passive recon
	...

Front matter may include:

	Name         Type               Description
	-----------  -----------------  -----------------------------------------
	title        string             Title of page
	description  string             Lead paragraph shown under the title
	date         time               Publish date; later dates stay hidden
	template     string             Override the template used to render the page
	tags         array of strings   Tags for the page
	redirect     string             Issue a redirect to another location

# Reloading

A Library is immutable between reloads. Reload builds a complete new index and
swaps it in, so readers always see either the old set of pages or the new one.
Watch can be used in development to reload whenever the content tree changes.
*/
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Library indexes the Markdown pages found in an fs.FS.
type Library struct {
	fs     fs.FS
	logger *zap.Logger
	now    func() time.Time

	mu    sync.RWMutex
	pages map[string]*Page
	keys  []string // enumeration order
}

// New returns a Library over fsys with its index already built.
func New(fsys fs.FS, logger *zap.Logger) (*Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	lib := &Library{
		fs:     fsys,
		logger: logger,
		now:    time.Now,
	}
	if err := lib.Reload(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Reload walks the file system and replaces the index. Pages that fail to
// render are logged and left out; only a failure to walk is returned.
func (lib *Library) Reload() error {
	var (
		pages = make(map[string]*Page)
		keys  []string
	)
	err := fs.WalkDir(lib.fs, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name != "." && containsSpecialFile(name) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || path.Ext(name) != ".md" {
			return nil
		}
		p, err := lib.load(name)
		if err != nil {
			lib.logger.Warn("Skipping page", zap.String("file", name), zap.Error(err))
			return nil
		}
		key := p.Key()
		if prior, ok := pages[key]; ok {
			lib.logger.Warn("Duplicate slug",
				zap.String("slug", key),
				zap.String("file", name),
				zap.String("kept", prior.Source),
			)
			return nil
		}
		pages[key] = p
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("Reload: %w", err)
	}

	lib.mu.Lock()
	lib.pages = pages
	lib.keys = keys
	lib.mu.Unlock()

	lib.logger.Debug("Indexed content", zap.Int("pages", len(keys)))
	return nil
}

// load reads and renders a single Markdown file.
func (lib *Library) load(name string) (*Page, error) {
	b, err := fs.ReadFile(lib.fs, name)
	if err != nil {
		return nil, err
	}
	fi, err := fs.Stat(lib.fs, name)
	if err != nil {
		return nil, err
	}
	front, html, err := renderMarkdown(b)
	if err != nil {
		return nil, err
	}
	slug := SlugFromFile(name)
	p := &Page{
		Slug:        slug,
		Title:       front.Title,
		Description: front.Description,
		Template:    front.Template,
		Date:        front.Date,
		Tags:        front.Tags,
		Redirect:    front.Redirect,
		Content:     html,
		TOC:         tableOfContents(html),
		ModTime:     fi.ModTime(),
		Source:      name,
	}
	if p.Title == "" {
		p.Title = defaultTitle(slug)
	}
	return p, nil
}

// Page returns the published page with the given slug.
func (lib *Library) Page(slug []string) (*Page, bool) {
	return lib.Lookup(strings.Join(slug, "/"))
}

// Lookup returns the published page with the given slug key.
func (lib *Library) Lookup(key string) (*Page, bool) {
	lib.mu.RLock()
	p, ok := lib.pages[key]
	lib.mu.RUnlock()
	if !ok || !p.Published(lib.now()) {
		return nil, false
	}
	return p, true
}

// Keys returns the slug keys of every published page in enumeration order.
func (lib *Library) Keys() []string {
	now := lib.now()
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	r := make([]string, 0, len(lib.keys))
	for _, k := range lib.keys {
		if lib.pages[k].Published(now) {
			r = append(r, k)
		}
	}
	return r
}

// Params returns the slug of every published page in enumeration order.
func (lib *Library) Params() [][]string {
	keys := lib.Keys()
	r := make([][]string, len(keys))
	for i, k := range keys {
		r[i] = SlugFromKey(k)
	}
	return r
}

// ModTime returns the most recent modification time across all pages.
func (lib *Library) ModTime() time.Time {
	var t time.Time
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	for _, p := range lib.pages {
		if p.ModTime.After(t) {
			t = p.ModTime
		}
	}
	return t
}

// ReadFile reads a supporting file, such as meta.json, from the library root.
func (lib *Library) ReadFile(name string) ([]byte, error) {
	if containsSpecialFile(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	b, err := fs.ReadFile(lib.fs, name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		lib.logger.Warn("Cannot read content file", zap.String("file", name), zap.Error(err))
	}
	return b, err
}
