package handlers

import (
	"net/http"

	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/templates"
)

// PostsHandler handles the blog list page
type PostsHandler struct {
	*Env
	Blog    *models.Blog
	PerPage int
}

func (h *PostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "blog", "blog.title")
	all := h.Blog.Posts(p.Locale)

	query := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")
	posts := models.FilterByTag(models.SearchPosts(all, query), tag)
	posts, pg := models.Paginate(posts, queryInt(r, "page", 1), h.PerPage)

	h.render(w, r, p, templates.Blog(p, templates.BlogData{
		Posts:      posts,
		Pagination: pg,
		Query:      query,
		Tag:        tag,
		Tags:       models.CollectTags(all),
	}))
}
