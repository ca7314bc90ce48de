package catalog

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns public catalog routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/types", h.ListTypes)
	r.Get("/{type}", h.ListByType)
	r.Get("/{type}/{id}", h.GetItem)

	return r
}
