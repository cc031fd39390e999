package handlers

import (
	"net/http"

	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/templates"
)

// Figures shown in the home page stats band.
const (
	graduates = 1200
	partners  = 85
	placement = 78
)

type HomeHandler struct {
	*Env
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "home", "")
	testimonials := models.Testimonials()
	d := templates.HomeData{
		Featured:     models.FeaturedCourses(),
		Testimonials: testimonials,
		Current:      models.Wrap(queryInt(r, "t", 0), len(testimonials)),
		Graduates:    graduates,
		CourseCount:  len(models.Courses()),
		Partners:     partners,
		Placement:    placement,
	}
	h.render(w, r, p, templates.Home(p, d))
}
