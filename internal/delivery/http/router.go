package http

import (
	"net/http"

	analyticshttp "go-affiliate/internal/analytics/delivery/http"
	"go-affiliate/internal/metrics"
	redirecthttp "go-affiliate/internal/redirect/delivery/http"
	"go-affiliate/internal/redirect/ratelimit"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes.
// Only the tracked redirect routes are rate limited.
func NewRouter(
	redirect *redirecthttp.Handler,
	admin *analyticshttp.Handler,
	health *HealthHandler,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// Probes and metrics
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	redirecthttp.RegisterRoutes(r, redirect, limiter)
	analyticshttp.RegisterRoutes(r, admin)

	return r
}
