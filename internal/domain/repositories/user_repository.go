package repositories

import (
	"context"

	"github.com/lightbnb/marketplace/backend/internal/domain/entities"
)

// UserRepository defines the interface for user data operations.
//
// Lookups return (nil, nil) when no row matches; an error always means the
// statement itself failed.
type UserRepository interface {
	// Create inserts a new user and returns the materialized row,
	// including the generated id
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	// GetByID retrieves a user by primary key
	GetByID(ctx context.Context, id int64) (*entities.User, error)

	// GetByEmail retrieves a user by email, case-insensitively
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
