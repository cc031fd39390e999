package handlers

import (
	"net/http"

	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/templates"
)

// CoursesHandler serves the filtered catalog.
type CoursesHandler struct {
	*Env
	PerPage int
}

func (h *CoursesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "courses", "courses.title")
	q := r.URL.Query()
	filter := models.CourseFilter{
		Category: models.ParseCategory(q.Get("category")),
		Level:    models.ParseLevel(q.Get("level")),
		Query:    q.Get("q"),
		Locale:   p.Locale,
	}
	courses, pg := models.Paginate(models.FilterCourses(models.Courses(), filter), queryInt(r, "page", 1), h.PerPage)
	h.render(w, r, p, templates.Catalog(p, templates.CatalogData{
		Courses:    courses,
		Pagination: pg,
		Filter:     filter,
	}))
}

// CourseHandler serves one course by slug.
type CourseHandler struct {
	*Env
}

func (h *CourseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	course, ok := models.FindCourse(r.PathValue("slug"))
	if !ok {
		h.notFound(w, r)
		return
	}
	p := h.page(r, "courses", "")
	p.Title = course.Title.In(p.Locale)
	h.render(w, r, p, templates.CourseDetail(p, course))
}
