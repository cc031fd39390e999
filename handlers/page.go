// Package handlers serves the locale-prefixed pages of the site.
package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/0xb0b1/academy/config"
	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/middleware"
	"github.com/0xb0b1/academy/templates"
)

// Env is shared by every page handler.
type Env struct {
	Catalog *i18n.Catalog
	Site    config.Site
	Now     func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// page builds the page state of r. The locale comes from the request
// context, set by the locale middleware.
func (e *Env) page(r *http.Request, nav, titleKey string) templates.Page {
	t := e.Catalog.Bundle(string(i18n.FromContext(r.Context())))
	p := templates.Page{
		Locale: t.Locale(),
		T:      t,
		Site:   e.Site,
		Path:   middleware.StripLocale(r.URL.Path),
		Query:  r.URL.Query(),
		Nav:    nav,
		Now:    e.now(),
	}
	if titleKey != "" {
		p.Title = t.T(titleKey)
	}
	return p
}

func (e *Env) render(w http.ResponseWriter, r *http.Request, p templates.Page, body templ.Component) {
	e.renderStatus(w, r, http.StatusOK, p, body)
}

func (e *Env) renderStatus(w http.ResponseWriter, r *http.Request, status int, p templates.Page, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := templates.Base(p, body).Render(r.Context(), w); err != nil {
		log.Printf("Error rendering %s: %v", r.URL.Path, err)
		if status == http.StatusOK {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}

func (e *Env) notFound(w http.ResponseWriter, r *http.Request) {
	p := e.page(r, "", "notfound.title")
	e.renderStatus(w, r, http.StatusNotFound, p, templates.NotFound(p))
}

// NotFoundHandler renders the localized 404 page for unknown paths.
type NotFoundHandler struct {
	*Env
}

func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

// queryInt returns the integer query parameter key, or def when it is absent
// or malformed.
func queryInt(r *http.Request, key string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return n
}
