// Package metrics exposes Prometheus collectors for calculations and HTTP
// requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "living_cost"

	calculationsTotal   = "calculations_total"
	requestsTotal       = "http_requests_total"
	requestDurationName = "http_request_duration_milliseconds"

	// Labels
	outcomeLabel = "outcome"
	sourceLabel  = "source"
)

var latencyBuckets = []float64{1, 5, 25, 100, 500}

// Recorder owns a private registry so several handlers can coexist in one
// process (and in tests) without colliding on the default registerer.
type Recorder struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// NewRecorder creates and registers the collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      calculationsTotal,
				Help:      "number of calculations partitioned by outcome and request source",
			},
			[]string{sourceLabel, outcomeLabel},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      requestsTotal,
				Help:      "Number of HTTP requests partitioned by status code, method and HTTP path.",
			},
			[]string{"code", "method", "path"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      requestDurationName,
				Help:      "Time spent on the request partitioned by status code, method and HTTP path.",
				Buckets:   latencyBuckets,
			},
			[]string{"code", "method", "path"},
		),
	}

	r.registry.MustRegister(r.calculations, r.requests, r.latency)
	return r
}

// ObserveCalculation counts one calculation attempt.
func (r *Recorder) ObserveCalculation(source, outcome string) {
	r.calculations.With(prometheus.Labels{
		sourceLabel:  source,
		outcomeLabel: outcome,
	}).Inc()
}

// Middleware records request count and latency keyed by the chi route
// pattern, so path parameters do not explode label cardinality.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		path := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		code := strconv.Itoa(ww.Status())
		r.requests.WithLabelValues(code, req.Method, path).Inc()
		r.latency.WithLabelValues(code, req.Method, path).Observe(float64(time.Since(start).Milliseconds()))
	}
	return http.HandlerFunc(fn)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
