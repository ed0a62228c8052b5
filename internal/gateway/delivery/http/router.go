package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes.
// rateLimiter may be nil to disable per-IP limiting.
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)

	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)

	r.Group(func(r chi.Router) {
		if rateLimiter != nil {
			r.Use(rateLimiter.Middleware)
		}
		r.Get("/", handler.Redirect)
		r.Get("/api/redirect", handler.Redirect)
	})

	return r
}
