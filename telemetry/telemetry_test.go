package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/0xb0b1/academy/i18n"
)

func testMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{locale}/blog/{slug}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("slug") == "missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("post"))
	})
	return mux
}

func withLocale(l i18n.Locale, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), l)))
	})
}

func TestObserveCountsByRoutePattern(t *testing.T) {
	m := NewMetrics()
	h := withLocale(i18n.AR, m.Observe(testMux()))

	for _, path := range []string{"/ar/blog/a", "/ar/blog/b", "/ar/blog/missing", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	route := "GET /{locale}/blog/{slug}"
	if got := testutil.ToFloat64(m.requests.WithLabelValues(route, "ar", "200")); got != 2 {
		t.Fatalf("200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues(route, "ar", "404")); got != 1 {
		t.Fatalf("404 count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues(unmatchedRoute, "ar", "404")); got != 1 {
		t.Fatalf("unmatched count = %v, want 1", got)
	}
}

func TestFallbackAndContactCounters(t *testing.T) {
	m := NewMetrics()
	m.BundleFallback(i18n.AR, i18n.EN)
	m.BundleFallback(i18n.EN, "")
	m.ContactSubmission("sent")

	if got := testutil.ToFloat64(m.fallbacks.WithLabelValues("ar", "en")); got != 1 {
		t.Fatalf("fallback ar->en = %v", got)
	}
	if got := testutil.ToFloat64(m.fallbacks.WithLabelValues("en", "none")); got != 1 {
		t.Fatalf("fallback en->none = %v", got)
	}
	if got := testutil.ToFloat64(m.contact.WithLabelValues("sent")); got != 1 {
		t.Fatalf("contact sent = %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.ContactSubmission("invalid")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `academy_contact_submissions_total{result="invalid"} 1`) {
		t.Fatalf("metrics output missing counter:\n%s", rec.Body.String())
	}
}

func TestTraceNamesSpanAfterRoute(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	m := NewMetrics()
	h := Trace(tp, withLocale(i18n.FR, m.Observe(testMux())))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fr/blog/hello", nil))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "GET /{locale}/blog/{slug}" {
		t.Fatalf("span name = %q", span.Name())
	}
	var locale string
	for _, kv := range span.Attributes() {
		if kv.Key == localeAttr {
			locale = kv.Value.AsString()
		}
	}
	if locale != "fr" {
		t.Fatalf("locale attribute = %q, want fr (attributes %v)", locale, attribute.NewSet(span.Attributes()...))
	}
}

func TestTraceKeepsMethodNameOutsideMux(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	redirect := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/fr"+r.URL.Path, http.StatusTemporaryRedirect)
	})
	for _, path := range []string{"/courses/a", "/courses/b"} {
		Trace(tp, redirect).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	for _, span := range recorder.Ended() {
		if span.Name() != http.MethodGet {
			t.Fatalf("span name = %q, want %q", span.Name(), http.MethodGet)
		}
	}
}

func TestSetupTracingWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "academy", "")
	if err != nil {
		t.Fatalf("SetupTracing() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}
}

func TestRouteLabelFoldsLocalePrefix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"GET /fr/blog/{slug}", "GET /{locale}/blog/{slug}"},
		{"POST /ar/contact", "POST /{locale}/contact"},
		{"/en/", "/{locale}/"},
		{"GET /static/", "GET /static/"},
		{"GET /{locale}/blog/{slug}", "GET /{locale}/blog/{slug}"},
		{"", unmatchedRoute},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := routeLabel(tt.pattern); got != tt.want {
				t.Fatalf("routeLabel(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}
