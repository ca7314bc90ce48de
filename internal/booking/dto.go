package booking

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest is the user-entered half of a booking. Venue and
// venue address are optional; absent values are derived from the fetched
// entity.
type CreateBookingRequest struct {
	ServiceType     string `json:"service_type" validate:"required"`
	ServiceID       string `json:"service_id" validate:"required"`
	EventName       string `json:"event_name" validate:"required,min=2,max=120"`
	EventDate       string `json:"event_date" validate:"required,event_date"`
	EventTime       string `json:"event_time" validate:"required,event_time"`
	GuestCount      int    `json:"guest_count" validate:"required,gt=0"`
	Venue           string `json:"venue" validate:"omitempty,max=200"`
	VenueAddress    string `json:"venue_address" validate:"omitempty,max=300"`
	ContactPerson   string `json:"contact_person" validate:"required,min=2,max=100"`
	ContactPhone    string `json:"contact_phone" validate:"required,phone"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

// BookingRequest is the normalized wire payload submitted to the booking
// collaborator. vendorId always comes from the fetched entity, never from
// client input.
type BookingRequest struct {
	VendorID        string `json:"vendorId"`
	ServiceType     string `json:"serviceType"`
	ServiceID       string `json:"serviceId"`
	EventName       string `json:"eventName"`
	EventDate       string `json:"eventDate"`
	EventTime       string `json:"eventTime"`
	GuestCount      int    `json:"guestCount"`
	Venue           string `json:"venue"`
	VenueAddress    string `json:"venueAddress"`
	ContactPerson   string `json:"contactPerson"`
	ContactPhone    string `json:"contactPhone"`
	ContactEmail    string `json:"contactEmail,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Confirmation is the result of a successful submission: the collaborator's
// opaque id plus the request as submitted.
type Confirmation struct {
	ID      string         `json:"id"`
	Request BookingRequest `json:"request"`
}

// BookingResponse is one journaled booking as returned by the API
type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	ConfirmationID string    `json:"confirmation_id"`
	ServiceType    string    `json:"service_type"`
	ServiceID      string    `json:"service_id"`
	VendorID       string    `json:"vendor_id"`
	EventName      string    `json:"event_name"`
	EventDate      string    `json:"event_date"`
	GuestCount     int       `json:"guest_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse maps a journal entity to the API shape
func ToResponse(b *Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		ConfirmationID: b.ConfirmationID,
		ServiceType:    b.ServiceType,
		ServiceID:      b.ServiceID,
		VendorID:       b.VendorID,
		EventName:      b.EventName,
		EventDate:      b.EventDate,
		GuestCount:     b.GuestCount,
		CreatedAt:      b.CreatedAt,
	}
}
