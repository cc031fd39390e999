// Package server assembles the routes and middleware of the academy site.
package server

import (
	"io"
	"net/http"
	"time"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gorilla/handlers"
	"go.opentelemetry.io/otel/trace"

	"github.com/0xb0b1/academy/config"
	pages "github.com/0xb0b1/academy/handlers"
	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/middleware"
	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/static"
	"github.com/0xb0b1/academy/telemetry"
)

const robots = "User-agent: *\nAllow: /\n"

// Options are the dependencies of the site handler.
type Options struct {
	Catalog        *i18n.Catalog
	Site           config.Site
	Blog           *models.Blog
	Inbox          pages.MessageStore
	Metrics        *telemetry.Metrics
	TracerProvider trace.TracerProvider
	PostsPerPage   int
	CoursesPerPage int
	// AccessLog receives one combined log line per request. Nil disables it.
	AccessLog io.Writer
	Now       func() time.Time
}

// New returns the full site handler.
func New(o Options) http.Handler {
	if o.Metrics == nil {
		o.Metrics = telemetry.NewMetrics()
	}
	env := &pages.Env{Catalog: o.Catalog, Site: o.Site, Now: o.Now}

	mux := http.NewServeMux()

	// Pages are registered once per locale; the locale middleware has
	// already redirected every request without a supported prefix.
	for _, l := range i18n.Supported() {
		prefix := "/" + string(l)
		mux.Handle("GET "+prefix+"/{$}", &pages.HomeHandler{Env: env})
		mux.Handle("GET "+prefix+"/about", &pages.AboutHandler{Env: env})
		mux.Handle("GET "+prefix+"/courses", &pages.CoursesHandler{Env: env, PerPage: o.CoursesPerPage})
		mux.Handle("GET "+prefix+"/courses/{slug}", &pages.CourseHandler{Env: env})
		mux.Handle("GET "+prefix+"/blog", &pages.PostsHandler{Env: env, Blog: o.Blog, PerPage: o.PostsPerPage})
		mux.Handle("GET "+prefix+"/blog/{slug}", &pages.PostHandler{Env: env, Blog: o.Blog})
		mux.Handle("GET "+prefix+"/careers", &pages.CareersHandler{Env: env})
		mux.Handle("GET "+prefix+"/careers/{id}", &pages.JobHandler{Env: env})
		mux.Handle("GET "+prefix+"/events", &pages.EventsHandler{Env: env})
		mux.Handle("GET "+prefix+"/faq", &pages.FAQHandler{Env: env})
		mux.Handle("GET "+prefix+"/gallery", &pages.GalleryHandler{Env: env})
		mux.Handle("GET "+prefix+"/dashboard", &pages.DashboardHandler{Env: env})

		contact := &pages.ContactHandler{Env: env, Inbox: o.Inbox, Recorder: o.Metrics}
		mux.Handle("GET "+prefix+"/contact", contact)
		mux.Handle("POST "+prefix+"/contact", contact)

		mux.Handle(prefix+"/", &pages.NotFoundHandler{Env: env})
	}

	mux.Handle("GET /api/translations/{locale}", &pages.TranslationsHandler{Catalog: o.Catalog})
	mux.HandleFunc("GET /api/locales", pages.LocalesHandler)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	mux.HandleFunc("GET /static/chroma.css", chromaCSS)
	mux.HandleFunc("GET /robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, robots)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	})
	mux.Handle("GET /metrics", o.Metrics.Handler())
	mux.HandleFunc("/", http.NotFound)

	var h http.Handler = o.Metrics.Observe(mux)
	h = middleware.Locale(h)
	h = telemetry.Trace(o.TracerProvider, h)
	h = handlers.CompressHandler(h)
	if o.AccessLog != nil {
		h = handlers.CombinedLoggingHandler(o.AccessLog, h)
	}
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
}

// chromaCSS serves the stylesheet for the highlighted code blocks of blog
// posts.
func chromaCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(w, styles.Get(models.HighlightStyle)); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
