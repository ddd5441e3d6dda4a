// internal/api/router.go

// Package api exposes the recommendation engine over HTTP.
package api

import (
	"net/http"

	"layout-engine/internal/common/logger"
	"layout-engine/internal/engine"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the HTTP surface: the recommendation API under
// /api/v1, plus health and metrics endpoints.
func NewRouter(e *engine.Engine, log logger.Logger) http.Handler {
	h := &handler{engine: e, logger: log.WithFields(map[string]interface{}{"component": "api"})}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layouts/recommend", h.recommend)
		r.Post("/layouts/feedback", h.feedback)
		r.Get("/layouts/templates", h.templates)
		r.Post("/cache/clear", h.clearCache)
	})

	r.Get("/healthz", h.health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
