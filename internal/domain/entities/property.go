package entities

import (
	"github.com/lightbnb/marketplace/backend/pkg/money"
)

// Property represents a listing owned by a user.
//
// CostPerNight is stored in cents; callers quote dollars and the data layer
// owns the conversion.
type Property struct {
	ID                int64       `json:"id" db:"id"`
	OwnerID           int64       `json:"owner_id" db:"owner_id"`
	Title             string      `json:"title" db:"title"`
	Description       string      `json:"description" db:"description"`
	ThumbnailPhotoURL string      `json:"thumbnail_photo_url" db:"thumbnail_photo_url"`
	CoverPhotoURL     string      `json:"cover_photo_url" db:"cover_photo_url"`
	CostPerNight      money.Cents `json:"cost_per_night" db:"cost_per_night"`
	Street            string      `json:"street" db:"street"`
	City              string      `json:"city" db:"city"`
	Province          string      `json:"province" db:"province"`
	PostCode          string      `json:"post_code" db:"post_code"`
	Country           string      `json:"country" db:"country"`
	ParkingSpaces     int         `json:"parking_spaces" db:"parking_spaces"`
	NumberOfBathrooms int         `json:"number_of_bathrooms" db:"number_of_bathrooms"`
	NumberOfBedrooms  int         `json:"number_of_bedrooms" db:"number_of_bedrooms"`
}

// NewPropertyInput carries the caller-supplied fields for creating a property.
// CostPerNight is in dollars; the adapter converts it to cents on insert.
type NewPropertyInput struct {
	OwnerID           int64   `json:"owner_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url"`
	CostPerNight      float64 `json:"cost_per_night"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PostCode          string  `json:"post_code"`
	Country           string  `json:"country"`
	ParkingSpaces     int     `json:"parking_spaces"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
}

// PropertyListing is a property together with its aggregated review rating.
// AverageRating is zero when the property has no reviews.
type PropertyListing struct {
	Property
	AverageRating float64 `json:"average_rating" db:"average_rating"`
}
