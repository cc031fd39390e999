package handlers

import (
	"net/http"
	"strconv"

	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/templates"
)

type CareersHandler struct {
	*Env
}

func (h *CareersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "careers", "careers.title")
	h.render(w, r, p, templates.Careers(p, models.Jobs()))
}

// JobHandler serves one opening. Non-numeric and unknown ids are not found.
type JobHandler struct {
	*Env
}

func (h *JobHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.notFound(w, r)
		return
	}
	job, ok := models.FindJob(id)
	if !ok {
		h.notFound(w, r)
		return
	}
	p := h.page(r, "careers", "")
	p.Title = job.Title.In(p.Locale)
	h.render(w, r, p, templates.JobDetail(p, job))
}
