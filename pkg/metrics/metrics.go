// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for one service instance
type Metrics struct {
	HttpRequestsTotal    *prometheus.CounterVec
	HttpRequestDuration  *prometheus.HistogramVec
	RecomputationsTotal  *prometheus.CounterVec
	SnapshotsTotal       prometheus.Counter
	RateLimitedTotal     prometheus.Counter
	EventsPublishedTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg using prefix for every metric name
func New(prefix string, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		RecomputationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_performance_recomputations_total",
				Help: "Total number of vendor performance recomputations",
			},
			[]string{"trigger"},
		),
		SnapshotsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_performance_snapshots_total",
				Help: "Total number of historical performance snapshots written",
			},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
		EventsPublishedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_events_published_total",
				Help: "Total number of domain events handed to the broker",
			},
			[]string{"type", "result"},
		),
		gatherer: gatherer,
	}
}

// NewDefault registers the collectors on the global Prometheus registry
func NewDefault(prefix string) *Metrics {
	return New(prefix, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// RecordRecompute counts one performance recomputation
func (m *Metrics) RecordRecompute(trigger string) {
	m.RecomputationsTotal.WithLabelValues(trigger).Inc()
}

// RecordSnapshot counts one historical snapshot
func (m *Metrics) RecordSnapshot() {
	m.SnapshotsTotal.Inc()
}

// RecordRateLimited counts one rejected request
func (m *Metrics) RecordRateLimited() {
	m.RateLimitedTotal.Inc()
}

// RecordEvent counts one event publish attempt
func (m *Metrics) RecordEvent(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}

// Handler serves the registered collectors in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled by the matched route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start).Seconds()

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)

		m.HttpRequestsTotal.WithLabelValues(r.Method, path, code).Inc()
		m.HttpRequestDuration.WithLabelValues(r.Method, path, code).Observe(duration)
	})
}
