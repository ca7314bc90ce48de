package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/utsav/utsav-api/internal/catalog"
	"github.com/utsav/utsav-api/internal/pkg/upstream"
)

// Service handles booking submissions. It scopes one dispatcher per
// authenticated user, so the single-submission-in-flight guard covers the
// user's open booking session.
type Service struct {
	registry *catalog.Registry
	client   *upstream.Client
	repo     Repository

	mu          sync.Mutex
	dispatchers map[uuid.UUID]*Dispatcher
}

// NewService creates booking service
func NewService(registry *catalog.Registry, client *upstream.Client, repo Repository) *Service {
	return &Service{
		registry:    registry,
		client:      client,
		repo:        repo,
		dispatchers: make(map[uuid.UUID]*Dispatcher),
	}
}

func (s *Service) dispatcherFor(userID uuid.UUID) *Dispatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.dispatchers[userID]
	if !ok {
		d = NewDispatcher(s.registry, s.client)
		s.dispatchers[userID] = d
	}
	return d
}

// Submit dispatches a booking for the user and journals the confirmation
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, token string, req CreateBookingRequest) (*Confirmation, error) {
	conf, err := s.dispatcherFor(userID).Submit(ctx, token, req)
	if err != nil {
		return nil, err
	}

	entry := &Booking{
		ID:             uuid.New(),
		UserID:         userID,
		ConfirmationID: conf.ID,
		VendorID:       conf.Request.VendorID,
		ServiceType:    conf.Request.ServiceType,
		ServiceID:      conf.Request.ServiceID,
		EventName:      conf.Request.EventName,
		EventDate:      conf.Request.EventDate,
		EventTime:      conf.Request.EventTime,
		GuestCount:     conf.Request.GuestCount,
		Venue:          conf.Request.Venue,
		VenueAddress:   conf.Request.VenueAddress,
		ContactPerson:  conf.Request.ContactPerson,
		ContactPhone:   conf.Request.ContactPhone,
		CreatedAt:      time.Now(),
	}

	// The booking already succeeded upstream; a journal failure must not
	// turn it into a user-visible error.
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Error().Err(err).
			Str("confirmation_id", conf.ID).
			Str("user_id", userID.String()).
			Msg("Failed to journal booking")
	}

	return conf, nil
}

// ListBookings returns the user's journaled bookings, newest first
func (s *Service) ListBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}
