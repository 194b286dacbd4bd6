package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lightbnb/marketplace/backend/internal/domain/entities"
	"github.com/lightbnb/marketplace/backend/internal/domain/repositories"
	"github.com/lightbnb/marketplace/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/lightbnb/marketplace/backend/pkg/errors"
)

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a new user and returns the stored row.
//
// The email is stored exactly as given. Lookups lower-case their input, so
// callers that insert mixed-case emails can create rows that collide under
// case-insensitive lookup; enforcing write-time casing is the caller's job.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	record := goqu.Record{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.Password,
	}

	query, args, err := a.db.Insert("users").
		Prepared(true).
		Rows(record).
		Returning("id", "name", "email", "password").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewQueryError("failed to build insert query", err)
	}

	created := &entities.User{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.Password,
	)
	if err != nil {
		return nil, apperrors.NewQueryError("failed to create user", err)
	}

	return created, nil
}

// GetByID retrieves a user by primary key
func (a *UserAdapter) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return a.getOne(ctx, goqu.Ex{"id": id})
}

// GetByEmail retrieves a user by email. The input is lower-cased before the
// lookup so any case-variant of a stored email finds the same user.
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return a.getOne(ctx, goqu.Ex{"email": strings.ToLower(email)})
}

func (a *UserAdapter) getOne(ctx context.Context, where goqu.Ex) (*entities.User, error) {
	query, args, err := a.db.Select("id", "name", "email", "password").
		From("users").
		Where(where).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewQueryError("failed to build query", err)
	}

	user := &entities.User{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
	)

	// A miss is an absent result, not a failure
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryError("failed to get user", err)
	}

	return user, nil
}
