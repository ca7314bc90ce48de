package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/utsav/utsav-api/internal/pkg/upstream"
)

func TestComputeStatsCombinesCounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer vendor-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/api/vendor/listings":
			_, _ = w.Write([]byte(`[{"id":"g-1"},{"id":"dj-4"},{"id":"cat-2"}]`))
		case "/api/bookings/vendor/stats":
			_, _ = w.Write([]byte(`{"totalBookings":17}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	svc := NewService(upstream.NewClient(server.URL, "", time.Second, ""))

	stats, err := svc.ComputeStats(context.Background(), "vendor-token")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if stats.TotalListings != 3 {
		t.Fatalf("expected 3 listings, got %d", stats.TotalListings)
	}
	if stats.TotalBookings != 17 {
		t.Fatalf("expected 17 bookings, got %d", stats.TotalBookings)
	}
	if !stats.BookingsAvailable {
		t.Fatal("expected bookings marked available")
	}
}

func TestComputeStatsListingsFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/vendor/listings":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/bookings/vendor/stats":
			_, _ = w.Write([]byte(`{"totalBookings":17}`))
		}
	}))
	t.Cleanup(server.Close)

	svc := NewService(upstream.NewClient(server.URL, "", time.Second, ""))

	_, err := svc.ComputeStats(context.Background(), "vendor-token")
	if !errors.Is(err, ErrStatsUnavailable) {
		t.Fatalf("expected ErrStatsUnavailable, got %v", err)
	}
}

func TestComputeStatsBookingFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/vendor/listings":
			_, _ = w.Write([]byte(`[{"id":"g-1"},{"id":"g-2"}]`))
		case "/api/bookings/vendor/stats":
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(server.Close)

	svc := NewService(upstream.NewClient(server.URL, "", time.Second, ""))

	stats, err := svc.ComputeStats(context.Background(), "vendor-token")
	if err != nil {
		t.Fatalf("expected degraded success, got %v", err)
	}
	if stats.TotalListings != 2 {
		t.Fatalf("expected 2 listings, got %d", stats.TotalListings)
	}
	if stats.TotalBookings != 0 {
		t.Fatalf("expected zero bookings in degraded mode, got %d", stats.TotalBookings)
	}
	if stats.BookingsAvailable {
		t.Fatal("expected bookings marked unavailable, not zero")
	}
}

func TestComputeStatsEmptyListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/vendor/listings":
			_, _ = w.Write([]byte(`[]`))
		case "/api/bookings/vendor/stats":
			_, _ = w.Write([]byte(`{"totalBookings":0}`))
		}
	}))
	t.Cleanup(server.Close)

	svc := NewService(upstream.NewClient(server.URL, "", time.Second, ""))

	stats, err := svc.ComputeStats(context.Background(), "vendor-token")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if stats.TotalListings != 0 || stats.TotalBookings != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if !stats.BookingsAvailable {
		t.Fatal("a real zero must still be marked available")
	}
}
