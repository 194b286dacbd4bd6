package repositories

import (
	"context"

	"github.com/lightbnb/marketplace/backend/internal/domain/entities"
)

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	// Create inserts a new property, converting the caller's dollar price
	// to cents, and returns the stored row including the generated id
	Create(ctx context.Context, input *entities.NewPropertyInput) (*entities.Property, error)

	// Search retrieves property listings matching the filter, ordered by
	// ascending nightly cost. A zero-value filter matches everything.
	Search(ctx context.Context, filter PropertySearchFilter, limit int) ([]*entities.PropertyListing, error)
}

// PropertySearchFilter defines optional criteria for property search.
//
// Nil pointer fields and the empty city string mean "not filtered".
// Prices are in dollars; the search converts them to cents to match storage.
type PropertySearchFilter struct {
	City                 string
	OwnerID              *int64
	MinimumPricePerNight *float64
	MaximumPricePerNight *float64
	MinimumRating        *float64
}
