package handlers

import (
	"net/http"

	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/templates"
)

type PostHandler struct {
	*Env
	Blog *models.Blog
}

func (h *PostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "blog", "")
	post, ok := h.Blog.Find(p.Locale, r.PathValue("slug"))
	if !ok {
		h.notFound(w, r)
		return
	}
	p.Title = post.Title
	h.render(w, r, p, templates.BlogPost(p, post))
}
