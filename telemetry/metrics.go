// Package telemetry holds the Prometheus metrics and OpenTelemetry tracing
// of the web server.
package telemetry

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/0xb0b1/academy/i18n"
)

const unmatchedRoute = "unmatched"

// Metrics owns the server's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
	contact   *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry, together with
// the Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_http_requests_total",
			Help: "HTTP requests by route pattern, locale and status code.",
		}, []string{"route", "locale", "code"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "academy_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_bundle_fallbacks_total",
			Help: "Translation bundles served in place of the requested one.",
		}, []string{"requested", "served"}),
		contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.durations,
		m.fallbacks,
		m.contact,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// BundleFallback counts a translation bundle served in place of another.
// It matches the i18n.Catalog OnFallback hook.
func (m *Metrics) BundleFallback(requested, served i18n.Locale) {
	label := string(served)
	if label == "" {
		label = "none"
	}
	m.fallbacks.WithLabelValues(string(requested), label).Inc()
}

// ContactSubmission counts a contact form outcome (sent, invalid, failed).
func (m *Metrics) ContactSubmission(result string) {
	m.contact.WithLabelValues(result).Inc()
}

// Observe records every request served by next, which must be the
// ServeMux itself so that the matched route pattern is visible afterwards.
// The route is also attached to the request span started by Trace.
func (m *Metrics) Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snoop := httpsnoop.CaptureMetrics(next, w, r)

		route := routeLabel(r.Pattern)
		locale := i18n.FromContext(r.Context())

		m.requests.WithLabelValues(route, string(locale), strconv.Itoa(snoop.Code)).Inc()
		m.durations.WithLabelValues(route).Observe(snoop.Duration.Seconds())

		span := trace.SpanFromContext(r.Context())
		if span.IsRecording() {
			span.SetName(route)
			span.SetAttributes(
				semconv.HTTPRoute(route),
				semconv.HTTPResponseStatusCode(snoop.Code),
				localeAttr.String(string(locale)),
			)
			if snoop.Code >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(snoop.Code))
			}
		}
	})
}

// routeLabel returns pattern with a literal locale segment replaced by
// {locale}, so pages registered once per locale share one label.
func routeLabel(pattern string) string {
	if pattern == "" {
		return unmatchedRoute
	}
	method, path, found := strings.Cut(pattern, " ")
	if !found {
		method, path = "", pattern
	}
	segment, rest, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if _, ok := i18n.Parse(segment); ok && segment == strings.ToLower(segment) && len(segment) == 2 {
		path = "/{locale}/" + rest
	}
	if method == "" {
		return path
	}
	return method + " " + path
}
