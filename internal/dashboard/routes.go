package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utsav/utsav-api/internal/middleware"
)

// Routes returns vendor routes, all behind auth with the vendor role
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Use(middleware.RequireVendor())

	r.Get("/stats", h.Stats)

	return r
}
