package repositories

import (
	"context"

	"github.com/lightbnb/marketplace/backend/internal/domain/entities"
)

// ReservationRepository defines the interface for reservation data operations
type ReservationRepository interface {
	// ListByGuest retrieves a guest's reservations joined with the booked
	// property and its average rating, most recent start date first.
	// A guest with no reservations yields an empty slice.
	ListByGuest(ctx context.Context, guestID int64, limit int) ([]*entities.GuestReservation, error)
}
