package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)

	// lookups and service endpoints, compressed on demand
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/users", h.getUser)
		r.Get("/storage", h.getObject)

		r.Get("/version", h.getServerVersion)
		r.Get("/health/live", h.healthLive)
		r.Get("/health/ready", h.healthReady)
	})

	// promhttp negotiates its own compression
	router.Method("GET", "/metrics", h.metrics.handler)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
