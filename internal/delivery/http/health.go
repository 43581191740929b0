package http

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db  Pinger
	rdb redis.Cmdable
}

// NewHealthHandler creates probes over db and, when rdb is not nil, Redis.
func NewHealthHandler(db Pinger, rdb redis.Cmdable) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Healthz handles GET /healthz (liveness probe)
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Reason: "database unavailable: " + err.Error(),
		})
		return
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unavailable",
				Reason: "redis unavailable: " + err.Error(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}
