package handlers

import (
	"net/http"

	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/templates"
)

type EventsHandler struct {
	*Env
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "events", "events.title")
	month := models.ParseMonth(r.URL.Query().Get("month"), p.Now)
	all := models.Events()
	grid := models.BuildMonthGrid(month, all, p.Now)
	h.render(w, r, p, templates.Calendar(p, grid, models.EventsIn(all, month)))
}

type FAQHandler struct {
	*Env
}

func (h *FAQHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "faq", "faq.title")
	h.render(w, r, p, templates.FAQ(p, models.FAQ(), queryInt(r, "open", -1)))
}

type GalleryHandler struct {
	*Env
}

func (h *GalleryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "gallery", "gallery.title")
	photos := models.Gallery()
	open := -1
	if r.URL.Query().Has("photo") {
		open = models.Wrap(queryInt(r, "photo", 0), len(photos))
	}
	h.render(w, r, p, templates.Gallery(p, photos, open))
}

type DashboardHandler struct {
	*Env
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "dashboard", "dashboard.title")
	q := r.URL.Query()
	h.render(w, r, p, templates.Dashboard(p, templates.DashboardData{
		View:       models.ParseDashboardView(q.Get("view")),
		Tab:        models.ParseDashboardTab(q.Get("tab")),
		Student:    models.SampleStudent(p.Now),
		Instructor: models.SampleInstructor(p.Now),
	}))
}
