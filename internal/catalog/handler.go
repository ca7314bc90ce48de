package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utsav/utsav-api/internal/pkg/errorhandler"
	"github.com/utsav/utsav-api/internal/pkg/response"
	"github.com/utsav/utsav-api/internal/pkg/upstream"
)

// Handler handles catalog HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates catalog handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListTypes handles GET /catalog/types
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	descriptors := h.svc.Types()
	items := make([]ServiceTypeResponse, len(descriptors))
	for i, d := range descriptors {
		items[i] = ToTypeResponse(d)
	}
	response.OK(w, items)
}

// ListByType handles GET /catalog/{type}
func (h *Handler) ListByType(w http.ResponseWriter, r *http.Request) {
	serviceType := chi.URLParam(r, "type")

	spec, err := specFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	records, total, err := h.svc.ListFiltered(r.Context(), serviceType, spec)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	response.WithMeta(w, records, response.Meta{Total: total, Filtered: len(records)})
}

// GetItem handles GET /catalog/{type}/{id}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	serviceType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	entity, err := h.svc.GetItem(r.Context(), serviceType, id)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	response.OK(w, entity)
}

func specFromQuery(r *http.Request) (FilterSpec, error) {
	q := r.URL.Query()

	spec := FilterSpec{
		City:   q.Get("city"),
		Type:   q.Get("type"),
		Bucket: q.Get("bucket"),
	}

	name := q.Get("min_attr")
	rawValue := q.Get("min_value")
	if name != "" || rawValue != "" {
		if name == "" || rawValue == "" {
			return FilterSpec{}, errors.New("min_attr and min_value must be provided together")
		}
		threshold, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return FilterSpec{}, errors.New("min_value must be numeric")
		}
		spec.MinAttribute = &AttributeThreshold{Name: name, Threshold: threshold}
	}

	return spec, nil
}

func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnknownServiceType):
		response.NotFound(w, "Unknown service type")
	case errors.Is(err, ErrUnknownBucket):
		response.BadRequest(w, "Unknown price bucket")
	case errors.Is(err, upstream.ErrNotFound):
		response.NotFound(w, "Listing not found")
	case errors.Is(err, upstream.ErrUnavailable):
		errorhandler.HandleError(r.Context(), w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Marketplace is unreachable", err)
	default:
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to load catalog", err)
	}
}
