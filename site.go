package main

import (
	"fmt"
	"html/template"
	"io/fs"
	textTemplate "text/template"
	"time"

	"github.com/ancientlore/cachefs"
	"github.com/google/uuid"
	"github.com/penquinx/docsite/carousel"
	"github.com/penquinx/docsite/chrome"
	"github.com/penquinx/docsite/content"
	"github.com/penquinx/docsite/credits"
	"github.com/penquinx/docsite/docs"
	"github.com/penquinx/docsite/web"
	"go.uber.org/zap"
)

// Folders within the site root.
const (
	docsFolder     = "docs"
	staticFolder   = "static"
	templateFolder = "template"
)

// site holds everything needed to serve the web site.
type site struct {
	cfg       *content.Config
	lib       *content.Library
	nav       *docs.Navigator
	sections  []carousel.Section
	chrome    *chrome.Chrome
	tpl       *template.Template
	sitemap   *textTemplate.Template
	tplMod    time.Time
	static    fs.FS
	purchaser *credits.Purchaser
	metrics   *web.Metrics
	logger    *zap.Logger
	articles  *articleCache // nil when caching is off
}

// siteOptions are the process-level settings of a site.
type siteOptions struct {
	Logger  *zap.Logger
	Metrics *web.Metrics
	Cache   bool // use groupcache for articles and static files
}

// newSite loads the site found at root.
func newSite(root fs.FS, opts siteOptions) (*site, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = web.NewMetrics("penquinx")
	}
	s := &site{logger: opts.Logger, metrics: opts.Metrics}

	var err error
	s.cfg, err = content.LoadConfig(root)
	if err != nil {
		return nil, fmt.Errorf("newSite: %w", err)
	}

	docsFS, err := fs.Sub(root, docsFolder)
	if err != nil {
		return nil, fmt.Errorf("newSite: %w", err)
	}
	s.lib, err = content.New(docsFS, s.logger)
	if err != nil {
		return nil, fmt.Errorf("newSite: %w", err)
	}
	s.nav = docs.New(s.lib,
		docs.WithMeta(s.lib),
		docs.WithBasePath(s.cfg.BasePath),
		docs.WithLogger(s.logger))
	if missing := s.nav.Check(); len(missing) > 0 {
		s.logger.Warn("Ordered pages are missing", zap.Strings("slugs", missing))
	}

	s.sections, err = carousel.LoadSections(root, s.cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("newSite: %w", err)
	}
	names := make([]string, len(s.sections))
	for i, sec := range s.sections {
		names[i] = sec.Name
	}
	s.chrome = chrome.New(s.cfg.BasePath, names...)

	s.tpl, s.tplMod, err = loadTemplates(root)
	if err != nil {
		return nil, fmt.Errorf("newSite: %w", err)
	}
	s.sitemap, err = loadSitemapTemplate(root)
	if err != nil {
		return nil, fmt.Errorf("newSite: %w", err)
	}

	s.static, err = fs.Sub(root, staticFolder)
	if err != nil {
		return nil, fmt.Errorf("newSite: %w", err)
	}
	s.static = hiddenFileFS{s.static}
	if opts.Cache && s.cfg.CacheBytes > 0 {
		// groupcache names are registered once per process
		id := uuid.NewString()
		s.static = cachefs.New(s.static, &cachefs.Config{
			GroupName:   "static-" + id,
			SizeInBytes: s.cfg.CacheBytes,
			Duration:    time.Duration(s.cfg.CacheDuration),
		})
		s.articles = newArticleCache(s, "article-"+id, s.cfg.CacheBytes, time.Duration(s.cfg.CacheDuration))
	}

	s.purchaser = credits.NewPurchaser(s.logger, func(p credits.Package) {
		s.metrics.Purchases.WithLabelValues(fmt.Sprint(p.Credits)).Inc()
	})
	return s, nil
}

// reloaded records the result of a content reload.
func (s *site) reloaded(err error) {
	if err != nil {
		s.metrics.Reloads.WithLabelValues("error").Inc()
		return
	}
	s.metrics.Reloads.WithLabelValues("ok").Inc()
}

// section returns the carousel section with the given name.
func (s *site) section(name string) (carousel.Section, bool) {
	return carousel.Find(s.sections, name)
}

// modTime is the later of the content and template modification times.
func (s *site) modTime() time.Time {
	t := s.lib.ModTime()
	if s.tplMod.After(t) {
		t = s.tplMod
	}
	return t
}
