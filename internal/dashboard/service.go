package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/utsav/utsav-api/internal/pkg/upstream"
)

const (
	listingsPath     = "/api/vendor/listings"
	bookingStatsPath = "/api/bookings/vendor/stats"
)

// Stats are the vendor dashboard counts. BookingsAvailable distinguishes
// "zero bookings" from "booking stats backend unreachable".
type Stats struct {
	TotalListings     int  `json:"total_listings"`
	TotalBookings     int  `json:"total_bookings"`
	BookingsAvailable bool `json:"bookings_available"`
}

// Service aggregates dashboard counts across the vendor's disjoint listing
// collections and the booking-stats collaborator.
type Service struct {
	client *upstream.Client
}

// NewService creates vendor stats service
func NewService(client *upstream.Client) *Service {
	return &Service{client: client}
}

// ComputeStats issues the two upstream requests concurrently. Listings
// failure is fatal; booking-stats failure degrades to an unavailable count.
func (s *Service) ComputeStats(ctx context.Context, token string) (*Stats, error) {
	stats := &Stats{BookingsAvailable: true}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var listings []json.RawMessage
		if err := s.client.GetWithToken(ctx, listingsPath, token, &listings); err != nil {
			return fmt.Errorf("%w: %v", ErrStatsUnavailable, err)
		}
		stats.TotalListings = len(listings)
		return nil
	})

	g.Go(func() error {
		var resp struct {
			TotalBookings int `json:"totalBookings"`
		}
		if err := s.client.GetWithToken(ctx, bookingStatsPath, token, &resp); err != nil {
			log.Warn().Err(err).Msg("Booking stats unavailable, degrading to zero")
			stats.TotalBookings = 0
			stats.BookingsAvailable = false
			return nil
		}
		stats.TotalBookings = resp.TotalBookings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}
