package dashboard

import (
	"errors"
	"net/http"

	"github.com/utsav/utsav-api/internal/middleware"
	"github.com/utsav/utsav-api/internal/pkg/errorhandler"
	"github.com/utsav/utsav-api/internal/pkg/response"
)

// Handler handles vendor dashboard HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates vendor handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Stats handles GET /vendor/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetBearerToken(r.Context())

	stats, err := h.svc.ComputeStats(r.Context(), token)
	if err != nil {
		if errors.Is(err, ErrStatsUnavailable) {
			errorhandler.HandleError(r.Context(), w, http.StatusBadGateway, "VENDOR_STATS_UNAVAILABLE", "Vendor stats are unavailable, please retry", err)
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "VENDOR_STATS_FAILED", "Failed to compute vendor stats", err)
		return
	}

	response.OK(w, stats)
}
