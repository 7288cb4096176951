// Package server exposes the calculator, layouts, history and saved
// measurements as a JSON HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/logger"
	"tapecalc/internal/metrics"
)

var log = logger.ForComponent("server")

// RouterConfig holds router configuration.
type RouterConfig struct {
	MetricsEnabled bool
	MetricsPath    string
	RequestTimeout time.Duration

	// Precision and Display are the defaults for compute endpoints.
	Precision imperial.Precision
	Display   imperial.DisplayOptions
}

// Deps are the services behind the API. Metrics may be nil.
type Deps struct {
	History domain.HistoryService
	Saved   domain.SavedService
	Metrics *metrics.Metrics
}

// NewRouter creates the HTTP router.
func NewRouter(deps Deps, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(deps.Metrics))
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	h := NewHandler(deps, cfg)

	r.Get("/health", h.Health)
	if cfg.MetricsEnabled && deps.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, deps.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/layout", h.Layout)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.ListHistory)
			r.Post("/", h.AddHistory)
			r.Delete("/", h.ClearHistory)
		})

		r.Route("/saved-measurements", func(r chi.Router) {
			r.Get("/", h.ListSaved)
			r.Post("/", h.AddSaved)
			r.Delete("/{id}", h.DeleteSaved)
		})
	})

	return r
}

// accessLog logs each request and feeds the request metrics, labelled by
// route pattern rather than raw path.
func accessLog(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			if m != nil {
				m.ObserveRequest(r.Method, route, status, elapsed)
			}
			log.Info("request",
				"method", r.Method,
				"route", route,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", elapsed,
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
