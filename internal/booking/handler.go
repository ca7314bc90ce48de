package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/utsav/utsav-api/internal/catalog"
	"github.com/utsav/utsav-api/internal/middleware"
	"github.com/utsav/utsav-api/internal/pkg/errorhandler"
	"github.com/utsav/utsav-api/internal/pkg/response"
	"github.com/utsav/utsav-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /bookings
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())
	token := middleware.GetBearerToken(r.Context())

	conf, err := h.svc.Submit(r.Context(), userID, token, req)
	if err != nil {
		var rejected *RejectedError
		switch {
		case errors.Is(err, catalog.ErrUnknownServiceType):
			response.NotFound(w, "Unknown service type")
		case errors.Is(err, ErrEntityNotFound):
			response.NotFound(w, "Listing not found")
		case errors.Is(err, ErrSubmissionInProgress):
			response.Conflict(w, "A booking submission is already in progress")
		case errors.Is(err, ErrNetworkFailure):
			response.BadGateway(w, "Marketplace is unreachable, please retry")
		case errors.As(err, &rejected):
			response.Error(w, http.StatusUnprocessableEntity, "BOOKING_REJECTED", string(rejected.Payload))
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to submit booking", err)
		}
		return
	}

	response.Created(w, conf)
}

// List handles GET /bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	userID := middleware.GetUserID(r.Context())

	bookings, total, err := h.svc.ListBookings(r.Context(), userID, limit, offset)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "BOOKING_LIST_FAILED", "Failed to list bookings", err)
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = ToResponse(b)
	}

	response.OK(w, map[string]interface{}{
		"items": items,
		"total": total,
	})
}
