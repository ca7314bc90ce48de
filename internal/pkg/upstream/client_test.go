package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid method"))
			return
		}
		if r.URL.Path != "/api/djs/42" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid path"))
			return
		}
		if r.Header.Get("Authorization") != "Bearer service-token" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid auth"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","name":"DJ Arjun"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "service-token", time.Second, "Utsav/1.0 catalog")

	var got struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := client.Get(context.Background(), "/api/djs/42", &got); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "DJ Arjun" {
		t.Fatalf("expected decoded name, got %q", got.Name)
	}
}

func TestGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "token", time.Second, "")
	err := client.Get(context.Background(), "/api/djs/missing", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostStatusErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"guest count too large"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "", time.Second, "")
	err := client.Post(context.Background(), "/api/bookings", "user-token", map[string]int{"guestCount": 100000}, nil)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", statusErr.Status)
	}
	if !strings.Contains(string(statusErr.Body), "guest count") {
		t.Fatalf("expected upstream body preserved, got %s", statusErr.Body)
	}
}

func TestTimeoutClassifiedAsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "token", 20*time.Millisecond, "")
	err := client.Get(context.Background(), "/api/resorts", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestConnectionRefusedClassifiedAsUnavailable(t *testing.T) {
	// Port from a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client := NewClient(addr, "token", time.Second, "")
	err := client.Get(context.Background(), "/api/resorts", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
