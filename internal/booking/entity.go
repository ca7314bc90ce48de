package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one journaled submission. The journal is history for the
// caller's "my bookings" view; the collaborator remains the source of
// truth for booking state.
type Booking struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	ConfirmationID string    `db:"confirmation_id"`
	VendorID       string    `db:"vendor_id"`
	ServiceType    string    `db:"service_type"`
	ServiceID      string    `db:"service_id"`
	EventName      string    `db:"event_name"`
	EventDate      string    `db:"event_date"`
	EventTime      string    `db:"event_time"`
	GuestCount     int       `db:"guest_count"`
	Venue          string    `db:"venue"`
	VenueAddress   string    `db:"venue_address"`
	ContactPerson  string    `db:"contact_person"`
	ContactPhone   string    `db:"contact_phone"`
	CreatedAt      time.Time `db:"created_at"`
}
