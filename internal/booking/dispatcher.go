package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/utsav/utsav-api/internal/catalog"
	"github.com/utsav/utsav-api/internal/pkg/upstream"
)

// State is the dispatcher's submission state
type State int32

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Dispatcher resolves a (serviceType, serviceId) pair to the backing
// resource, normalizes the fetched entity into a booking payload and
// submits it. One dispatcher is scoped to one booking session: while a
// submission is in flight, further Submit calls on the same instance fail
// with ErrSubmissionInProgress. The guard does not protect against two
// sessions booking the same listing; deduplication is the collaborator's
// job.
type Dispatcher struct {
	registry *catalog.Registry
	client   *upstream.Client
	inFlight atomic.Bool
	state    atomic.Int32
}

// NewDispatcher creates a dispatcher for one booking session
func NewDispatcher(registry *catalog.Registry, client *upstream.Client) *Dispatcher {
	return &Dispatcher{registry: registry, client: client}
}

// State returns the dispatcher's current state
func (d *Dispatcher) State() State {
	return State(d.state.Load())
}

// entityFields is the cross-schema subset of a fetched entity needed to
// derive booking defaults. Different service types name their identifying
// field differently; the fallback chains below normalize that.
type entityFields struct {
	VendorID     string `json:"vendorId"`
	BusinessName string `json:"businessName"`
	Name         string `json:"name"`
	OwnerName    string `json:"ownerName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Location     struct {
		City string `json:"city"`
	} `json:"location"`
}

// Submit runs the booking protocol: resolve the service type, fetch the
// entity, derive defaults, merge user fields (user wins), submit. token is
// the caller's bearer token, forwarded to the booking collaborator.
func (d *Dispatcher) Submit(ctx context.Context, token string, req CreateBookingRequest) (*Confirmation, error) {
	if !d.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer d.inFlight.Store(false)

	d.state.Store(int32(StateSubmitting))

	conf, err := d.submit(ctx, token, req)
	if err != nil {
		d.state.Store(int32(StateFailed))
		return nil, err
	}
	d.state.Store(int32(StateSucceeded))
	return conf, nil
}

func (d *Dispatcher) submit(ctx context.Context, token string, req CreateBookingRequest) (*Confirmation, error) {
	// Step 1: resolve before any network call
	desc, err := d.registry.Resolve(req.ServiceType)
	if err != nil {
		return nil, err
	}

	// Step 2: fetch the entity
	var raw json.RawMessage
	if err := d.client.GetWithToken(ctx, desc.ItemEndpoint(req.ServiceID), token, &raw); err != nil {
		return nil, classifyFetchError(err)
	}

	var entity entityFields
	if err := json.Unmarshal(raw, &entity); err != nil {
		return nil, fmt.Errorf("decode entity: %w", err)
	}

	// Steps 3-5: derive defaults, merge (user fields win), build payload
	payload := buildRequest(req, entity)

	// Step 6: submit
	var conf struct {
		ID string `json:"id"`
	}
	if err := d.client.Post(ctx, "/api/bookings", token, payload, &conf); err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			return nil, &RejectedError{Status: statusErr.Status, Payload: statusErr.Body}
		}
		if errors.Is(err, upstream.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
		}
		return nil, err
	}

	return &Confirmation{ID: conf.ID, Request: payload}, nil
}

func buildRequest(req CreateBookingRequest, entity entityFields) BookingRequest {
	venue := firstNonEmpty(req.Venue, entity.BusinessName, entity.Name, entity.OwnerName)

	city := firstNonEmpty(entity.City, entity.Location.City)
	composedAddress := ""
	if city != "" && entity.State != "" {
		composedAddress = city + ", " + entity.State
	} else {
		composedAddress = firstNonEmpty(city, entity.State)
	}
	address := firstNonEmpty(req.VenueAddress, entity.Address, composedAddress)

	return BookingRequest{
		VendorID:        entity.VendorID,
		ServiceType:     req.ServiceType,
		ServiceID:       req.ServiceID,
		EventName:       req.EventName,
		EventDate:       req.EventDate,
		EventTime:       req.EventTime,
		GuestCount:      req.GuestCount,
		Venue:           venue,
		VenueAddress:    address,
		ContactPerson:   req.ContactPerson,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		SpecialRequests: req.SpecialRequests,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func classifyFetchError(err error) error {
	if errors.Is(err, upstream.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrEntityNotFound, err)
	}
	if errors.Is(err, upstream.ErrUnavailable) {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	return err
}
