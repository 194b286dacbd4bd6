package database

import (
	"context"
	"database/sql"

	"github.com/lightbnb/marketplace/backend/internal/domain/entities"
	"github.com/lightbnb/marketplace/backend/internal/domain/repositories"
	"github.com/lightbnb/marketplace/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/lightbnb/marketplace/backend/pkg/errors"
	"github.com/lightbnb/marketplace/backend/pkg/money"
)

// PropertyAdapter implements the PropertyRepository interface
type PropertyAdapter struct {
	client *postgres.Client
}

// NewPropertyAdapter creates a new property adapter
func NewPropertyAdapter(client *postgres.Client) repositories.PropertyRepository {
	return &PropertyAdapter{
		client: client,
	}
}

// Create inserts a new property and returns the stored row.
//
// The caller quotes cost_per_night in dollars; storage holds cents. All 14
// fields are bound positionally, so an absent field must arrive as its zero
// value rather than being omitted.
func (a *PropertyAdapter) Create(ctx context.Context, input *entities.NewPropertyInput) (*entities.Property, error) {
	query := `
		INSERT INTO properties (
			owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, street, city, province, post_code, country,
			parking_spaces, number_of_bathrooms, number_of_bedrooms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING
			id, owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, street, city, province, post_code, country,
			parking_spaces, number_of_bathrooms, number_of_bedrooms
	`

	property := &entities.Property{}
	err := a.client.DB().QueryRowContext(ctx, query,
		input.OwnerID,
		input.Title,
		input.Description,
		input.ThumbnailPhotoURL,
		input.CoverPhotoURL,
		money.FromDollars(input.CostPerNight),
		input.Street,
		input.City,
		input.Province,
		input.PostCode,
		input.Country,
		input.ParkingSpaces,
		input.NumberOfBathrooms,
		input.NumberOfBedrooms,
	).Scan(
		&property.ID,
		&property.OwnerID,
		&property.Title,
		&property.Description,
		&property.ThumbnailPhotoURL,
		&property.CoverPhotoURL,
		&property.CostPerNight,
		&property.Street,
		&property.City,
		&property.Province,
		&property.PostCode,
		&property.Country,
		&property.ParkingSpaces,
		&property.NumberOfBathrooms,
		&property.NumberOfBedrooms,
	)
	if err != nil {
		return nil, apperrors.NewQueryError("failed to create property", err)
	}

	return property, nil
}

// Search retrieves property listings matching the filter, ordered by
// ascending nightly cost and capped at limit (default 10).
//
// Properties without reviews are still listed (outer join) with a zero
// average rating, unless a minimum-rating filter excludes them.
func (a *PropertyAdapter) Search(ctx context.Context, filter repositories.PropertySearchFilter, limit int) ([]*entities.PropertyListing, error) {
	query, args := buildPropertySearch(filter, limit)

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewQueryError("failed to search properties", err)
	}
	defer rows.Close()

	listings := []*entities.PropertyListing{}
	for rows.Next() {
		listing := &entities.PropertyListing{}
		var avgRating sql.NullFloat64
		err := rows.Scan(
			&listing.ID,
			&listing.OwnerID,
			&listing.Title,
			&listing.Description,
			&listing.ThumbnailPhotoURL,
			&listing.CoverPhotoURL,
			&listing.CostPerNight,
			&listing.Street,
			&listing.City,
			&listing.Province,
			&listing.PostCode,
			&listing.Country,
			&listing.ParkingSpaces,
			&listing.NumberOfBathrooms,
			&listing.NumberOfBedrooms,
			&avgRating,
		)
		if err != nil {
			return nil, apperrors.NewQueryError("failed to scan property listing", err)
		}
		listing.AverageRating = avgRating.Float64
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryError("error iterating property listings", err)
	}

	return listings, nil
}
