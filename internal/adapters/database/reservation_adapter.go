package database

import (
	"context"
	"database/sql"

	"github.com/lightbnb/marketplace/backend/internal/domain/entities"
	"github.com/lightbnb/marketplace/backend/internal/domain/repositories"
	"github.com/lightbnb/marketplace/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/lightbnb/marketplace/backend/pkg/errors"
)

// ReservationAdapter implements the ReservationRepository interface
type ReservationAdapter struct {
	client *postgres.Client
}

// NewReservationAdapter creates a new reservation adapter
func NewReservationAdapter(client *postgres.Client) repositories.ReservationRepository {
	return &ReservationAdapter{
		client: client,
	}
}

// ListByGuest retrieves a guest's reservations joined with the booked
// property and its average review rating, most recent start date first,
// capped at limit (default 10).
func (a *ReservationAdapter) ListByGuest(ctx context.Context, guestID int64, limit int) ([]*entities.GuestReservation, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT
			reservations.id, reservations.guest_id, reservations.property_id,
			reservations.start_date, reservations.end_date,
			properties.id, properties.owner_id, properties.title, properties.description,
			properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
			properties.street, properties.city, properties.province, properties.post_code,
			properties.country, properties.parking_spaces, properties.number_of_bathrooms,
			properties.number_of_bedrooms,
			AVG(property_reviews.rating) AS average_rating
		FROM reservations
		JOIN properties ON properties.id = reservations.property_id
		LEFT JOIN property_reviews ON property_reviews.property_id = properties.id
		WHERE reservations.guest_id = $1
		GROUP BY reservations.id, properties.id
		ORDER BY reservations.start_date DESC
		LIMIT $2
	`

	rows, err := a.client.DB().QueryContext(ctx, query, guestID, limit)
	if err != nil {
		return nil, apperrors.NewQueryError("failed to list reservations", err)
	}
	defer rows.Close()

	reservations := []*entities.GuestReservation{}
	for rows.Next() {
		res := &entities.GuestReservation{}
		var avgRating sql.NullFloat64
		err := rows.Scan(
			&res.ID,
			&res.GuestID,
			&res.PropertyID,
			&res.StartDate,
			&res.EndDate,
			&res.Property.ID,
			&res.Property.OwnerID,
			&res.Property.Title,
			&res.Property.Description,
			&res.Property.ThumbnailPhotoURL,
			&res.Property.CoverPhotoURL,
			&res.Property.CostPerNight,
			&res.Property.Street,
			&res.Property.City,
			&res.Property.Province,
			&res.Property.PostCode,
			&res.Property.Country,
			&res.Property.ParkingSpaces,
			&res.Property.NumberOfBathrooms,
			&res.Property.NumberOfBedrooms,
			&avgRating,
		)
		if err != nil {
			return nil, apperrors.NewQueryError("failed to scan reservation", err)
		}
		res.AverageRating = avgRating.Float64
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryError("error iterating reservations", err)
	}

	return reservations, nil
}
