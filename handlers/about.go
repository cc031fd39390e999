package handlers

import (
	"net/http"

	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/templates"
)

type AboutHandler struct {
	*Env
}

func (h *AboutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "about", "about.title")
	h.render(w, r, p, templates.About(p, models.Team()))
}
