package http

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the admin analytics endpoints on r.
func RegisterRoutes(r chi.Router, handler *Handler) {
	r.Get("/admin/clicks", handler.ClicksOverTime)
	r.Get("/admin/clicks/by-product", handler.TopProducts)
}
