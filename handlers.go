package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/penquinx/docsite/chrome"
	"github.com/penquinx/docsite/content"
	"github.com/penquinx/docsite/credits"
	"github.com/penquinx/docsite/docs"
	"go.uber.org/zap"
)

// docTemplate is the page template for documents that do not name one.
const docTemplate = "doc"

// home renders the marketing landing page.
func (s *site) home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", &data{
		Title:       "PenquinX",
		Description: "Security tooling and learning resources for bug hunters.",
	})
}

// hub renders the documentation hub at the base path.
func (s *site) hub(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "hub", &data{
		Title:       "Documentation Hub",
		Description: "Begin Your PenquinX Experience",
		Cards:       chrome.HubCards(s.cfg.BasePath),
	})
}

// docPage renders the documentation page addressed by the rest of the path.
func (s *site) docPage(w http.ResponseWriter, r *http.Request) {
	slug := content.SlugFromKey(chi.URLParam(r, "*"))
	v, err := s.nav.View(slug)
	if errors.Is(err, docs.ErrNotFound) {
		s.metrics.NotFound.Inc()
		s.notFound(w, r)
		return
	} else if err != nil {
		s.logger.Error("docPage", zap.Error(err))
		s.serverError(w, r, err.Error())
		return
	}
	if v.Page.Redirect != "" {
		http.Redirect(w, r, v.Page.Redirect, http.StatusFound)
		return
	}
	if v.Tier != docs.TierExplicit {
		s.logger.Debug("Using fallback order", zap.String("slug", v.Key), zap.Stringer("tier", v.Tier))
	}
	article, err := s.article(v)
	if err != nil {
		s.logger.Error("docPage", zap.String("slug", v.Key), zap.Error(err))
		s.serverError(w, r, err.Error())
		return
	}
	name := docTemplate
	if v.Page.Template != "" && s.tpl.Lookup(v.Page.Template) != nil {
		name = v.Page.Template
	}
	s.render(w, r, http.StatusOK, name, &data{
		Title:       v.Page.Title,
		Description: v.Page.Description,
		Doc:         v,
		Article:     article,
	})
}

// carousel returns a handler for the landing page of the named section.
// The current item is taken from the i query parameter.
func (s *site) carousel(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sec, ok := s.section(name)
		if !ok {
			s.notFound(w, r)
			return
		}
		c := sec.Carousel()
		i, _ := strconv.Atoi(r.URL.Query().Get("i"))
		c.GoTo(i)
		d := &data{
			Title:       sec.Label,
			Description: sec.Blurb,
			Section:     &sec,
			Slides:      c.Slides(),
			Index:       c.Index(),
		}
		if !c.Single() {
			self := s.cfg.BasePath + "/" + sec.Name
			d.PrevHref = fmt.Sprintf("%s?i=%d", self, c.PrevIndex())
			d.NextHref = fmt.Sprintf("%s?i=%d", self, c.NextIndex())
		}
		s.render(w, r, http.StatusOK, "carousel", d)
	}
}

// creditsPage renders the purchase dialog. The package query parameter
// preselects a package by its number of credits.
func (s *site) creditsPage(w http.ResponseWriter, r *http.Request) {
	m := &credits.Modal{}
	if p := r.URL.Query().Get("package"); p != "" {
		m.Select(credits.ParseInt(p))
	}
	s.render(w, r, http.StatusOK, "credits", &data{
		Title: "Purchase Credits",
		Modal: m,
		Rows:  credits.Rows(),
	})
}

// purchase accepts the pay button. No payment is taken and the balance is
// left as it was.
func (s *site) purchase(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := credits.PurchaseRequest{Credits: credits.ParseInt(r.PostForm.Get("credits"))}
	m := &credits.Modal{}
	receipt, err := s.purchaser.Purchase(r.Context(), credits.NewCookieStore(w, r, "/"), req)
	if err != nil {
		s.logger.Info("Rejected purchase", zap.Int("credits", req.Credits), zap.Error(err))
		s.render(w, r, http.StatusBadRequest, "credits", &data{
			Title:   "Purchase Credits",
			Modal:   m,
			Rows:    credits.Rows(),
			Message: "Select a Package",
		})
		return
	}
	m.Select(receipt.Package.Credits)
	s.render(w, r, http.StatusOK, "credits", &data{
		Title:   "Purchase Credits",
		Modal:   m,
		Rows:    credits.Rows(),
		Receipt: receipt,
	})
}
