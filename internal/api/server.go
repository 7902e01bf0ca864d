package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"timesheet/internal/config"
	"timesheet/internal/services"
)

// NewServer wires the handlers, middleware and operational endpoints into a
// configured http.Server. Call ListenAndServe on the result in a goroutine
// and Shutdown it on exit.
func NewServer(cfg *config.Config, container *services.ServiceContainer, log *slog.Logger) *http.Server {
	mux := NewMux(container, log)

	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      loggingMiddleware(log, mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// NewMux builds the route table. Split out from NewServer so handler tests
// can drive it directly with httptest.
func NewMux(container *services.ServiceContainer, log *slog.Logger) *http.ServeMux {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := NewMetrics(registry)

	mux := http.NewServeMux()

	NewTimeEntryHandler(container.TimeEntries, log).Register(mux, metrics.Instrument)
	NewEmployeeHandler(container.Employees, log).Register(mux, metrics.Instrument)
	NewProjectHandler(container.Projects, log).Register(mux, metrics.Instrument)

	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

// loggingMiddleware provides basic request logging.
func loggingMiddleware(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		log.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", recorder.status),
			slog.Duration("dur", time.Since(start)),
		)
	})
}
