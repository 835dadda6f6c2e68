package main

import (
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/penquinx/docsite/chrome"
	"github.com/penquinx/docsite/web"
)

// staticPrefix is where static assets are served.
const staticPrefix = "/static/"

// routes returns the site's HTTP handler.
func (s *site) routes() http.Handler {
	base := s.cfg.BasePath

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(web.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(s.metrics.Middleware)

	r.NotFound(s.notFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	r.Get("/", s.home)
	r.Get("/healthz", healthz)
	r.Handle("/metrics", s.metrics.Handler())
	r.Get("/favicon.ico", s.favicon)
	r.Get("/sitemap.txt", s.sitemapText)
	r.Handle(staticPrefix+"*", web.ErrorHandler(http.StripPrefix(staticPrefix, http.FileServer(http.FS(s.static))), s.renderStatus))

	legacy := web.PrefixRedirect(chrome.DocsPrefix, base)
	r.Handle(chrome.DocsPrefix, legacy)
	r.Handle(chrome.DocsPrefix+"/*", legacy)

	r.Route(base, func(r chi.Router) {
		r.Use(chimiddleware.StripSlashes)
		r.Get("/", s.hub)
		for _, sec := range s.sections {
			r.Get("/"+sec.Name, s.carousel(sec.Name))
		}
		r.Get("/credits", s.creditsPage)
		r.Post("/credits/purchase", s.purchase)
		r.Get("/*", s.docPage)
	})

	h := gziphandler.GzipHandler(r)
	h = web.ExpiresHandler(h, staticPrefix, time.Duration(s.cfg.Expires), time.Duration(s.cfg.StaticExpires))
	return web.HeaderHandler(h, s.cfg.Headers)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}
