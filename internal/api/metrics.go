package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Instrumenter wraps a handler registered under a route pattern. Routes are
// labeled by their pattern, not the concrete path, to keep label cardinality
// bounded.
type Instrumenter func(route string, next http.HandlerFunc) http.Handler

// handle registers a route, instrumented when an Instrumenter is supplied.
func handle(mux *http.ServeMux, instrument Instrumenter, pattern string, handler http.HandlerFunc) {
	if instrument != nil {
		mux.Handle(pattern, instrument(pattern, handler))
		return
	}
	mux.HandleFunc(pattern, handler)
}

// Metrics holds the request-level Prometheus collectors.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timesheet_http_requests_total",
			Help: "HTTP requests handled, by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "timesheet_http_request_duration_seconds",
			Help:    "HTTP request latency, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Instrument returns an Instrumenter recording counts and latency.
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder captures the status code a handler wrote.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
