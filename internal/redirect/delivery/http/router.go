package http

import (
	"go-affiliate/internal/redirect/ratelimit"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the tracked redirect routes behind the rate limiter.
func RegisterRoutes(r chi.Router, handler *Handler, limiter ratelimit.Limiter) {
	r.Group(func(r chi.Router) {
		r.Use(RateLimit(limiter))

		r.Get("/redirect/{offerId}", handler.Redirect)
		r.Get("/click", handler.Click)
	})
}
