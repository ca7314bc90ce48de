package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines booking journal data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Booking, int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking journal repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, confirmation_id, vendor_id, service_type, service_id,
			event_name, event_date, event_time, guest_count,
			venue, venue_address, contact_person, contact_phone, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14, $15
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.UserID, b.ConfirmationID, b.VendorID, b.ServiceType, b.ServiceID,
		b.EventName, b.EventDate, b.EventTime, b.GuestCount,
		b.Venue, b.VenueAddress, b.ContactPerson, b.ContactPhone, b.CreatedAt,
	)
	return err
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID); err != nil {
		return nil, 0, err
	}

	var bookings []*Booking
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
