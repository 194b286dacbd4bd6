//go:build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/lightbnb/marketplace/backend/internal/adapters/database"
	"github.com/lightbnb/marketplace/backend/internal/domain/entities"
	"github.com/lightbnb/marketplace/backend/internal/domain/repositories"
	"github.com/lightbnb/marketplace/backend/internal/infrastructure/clients/postgres"
	"github.com/lightbnb/marketplace/backend/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DataLayerIntegrationTestSuite struct {
	suite.Suite
	client       *postgres.Client
	db           *sql.DB
	users        repositories.UserRepository
	properties   repositories.PropertyRepository
	reservations repositories.ReservationRepository
}

func (suite *DataLayerIntegrationTestSuite) SetupSuite() {
	suite.client = newTestPostgresClient(suite.T())
	suite.db = suite.client.DB()
	suite.users = database.NewUserAdapter(suite.client)
	suite.properties = database.NewPropertyAdapter(suite.client)
	suite.reservations = database.NewReservationAdapter(suite.client)

	suite.runMigrations()
}

func (suite *DataLayerIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.client.Close()
	}
}

func (suite *DataLayerIntegrationTestSuite) runMigrations() {
	migrationPath := "../../migrations/001_initial_schema.sql"
	migrationSQL, err := os.ReadFile(migrationPath)
	require.NoError(suite.T(), err)
	_, err = suite.db.Exec(string(migrationSQL))
	require.NoError(suite.T(), err)
}

func (suite *DataLayerIntegrationTestSuite) createTestUser() *entities.User {
	user, err := suite.users.Create(context.Background(), &entities.User{
		Name:     "Test Guest",
		Email:    fmt.Sprintf("guest-%s@example.com", uuid.NewString()),
		Password: "$2a$10$FB/BOAVhpuLvpOREQVmvmezD4ED/.JBIDRh70tGevYzYzQgFId2u.",
	})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), user)
	return user
}

func (suite *DataLayerIntegrationTestSuite) createTestProperty(ownerID int64, city string, costDollars float64) *entities.Property {
	property, err := suite.properties.Create(context.Background(), &entities.NewPropertyInput{
		OwnerID:           ownerID,
		Title:             "Listing " + uuid.NewString(),
		Description:       "Integration test listing",
		ThumbnailPhotoURL: "https://photos.example.com/thumb.jpg",
		CoverPhotoURL:     "https://photos.example.com/cover.jpg",
		CostPerNight:      costDollars,
		Street:            "1 Test St",
		City:              city,
		Province:          "BC",
		PostCode:          "V0V 0V0",
		Country:           "Canada",
		ParkingSpaces:     1,
		NumberOfBathrooms: 1,
		NumberOfBedrooms:  2,
	})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), property)
	return property
}

func (suite *DataLayerIntegrationTestSuite) addReview(guestID, propertyID int64, rating int) {
	_, err := suite.db.Exec(
		`INSERT INTO property_reviews (guest_id, property_id, rating, message) VALUES ($1, $2, $3, '')`,
		guestID, propertyID, rating,
	)
	require.NoError(suite.T(), err)
}

func (suite *DataLayerIntegrationTestSuite) addReservation(guestID, propertyID int64, start time.Time) {
	_, err := suite.db.Exec(
		`INSERT INTO reservations (guest_id, property_id, start_date, end_date) VALUES ($1, $2, $3, $4)`,
		guestID, propertyID, start, start.AddDate(0, 0, 7),
	)
	require.NoError(suite.T(), err)
}

func (suite *DataLayerIntegrationTestSuite) TestUserRoundTrip() {
	ctx := context.Background()
	created := suite.createTestUser()

	byID, err := suite.users.GetByID(ctx, created.ID)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), byID)
	assert.Equal(suite.T(), created, byID)

	// Any case-variant of the stored email finds the same user
	byEmail, err := suite.users.GetByEmail(ctx, strings.ToUpper(created.Email))
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), byEmail)
	assert.Equal(suite.T(), created.ID, byEmail.ID)
}

func (suite *DataLayerIntegrationTestSuite) TestLookupMissIsNotAnError() {
	ctx := context.Background()

	user, err := suite.users.GetByEmail(ctx, "does-not-exist@example.com")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), user)

	user, err = suite.users.GetByID(ctx, -1)
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), user)
}

func (suite *DataLayerIntegrationTestSuite) TestPropertyPriceStoredInCents() {
	ctx := context.Background()
	owner := suite.createTestUser()
	city := "Centsville-" + uuid.NewString()

	property := suite.createTestProperty(owner.ID, city, 150.00)
	assert.Equal(suite.T(), money.Cents(15000), property.CostPerNight)

	var stored int64
	err := suite.db.QueryRow(`SELECT cost_per_night FROM properties WHERE id = $1`, property.ID).Scan(&stored)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(15000), stored)

	inRange, err := suite.properties.Search(ctx, repositories.PropertySearchFilter{
		City:                 city,
		MinimumPricePerNight: float64Ptr(100),
		MaximumPricePerNight: float64Ptr(200),
	}, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), inRange, 1)
	assert.Equal(suite.T(), property.ID, inRange[0].ID)

	aboveMin, err := suite.properties.Search(ctx, repositories.PropertySearchFilter{
		City:                 city,
		MinimumPricePerNight: float64Ptr(151),
	}, 10)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), aboveMin)
}

func (suite *DataLayerIntegrationTestSuite) TestSearchOrderedByPriceAndCapped() {
	ctx := context.Background()
	owner := suite.createTestUser()
	city := "Pricetown-" + uuid.NewString()

	for _, dollars := range []float64{210, 90, 150, 120, 180} {
		suite.createTestProperty(owner.ID, city, dollars)
	}

	listings, err := suite.properties.Search(ctx, repositories.PropertySearchFilter{City: city}, 4)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listings, 4)
	for i := 1; i < len(listings); i++ {
		assert.LessOrEqual(suite.T(), int64(listings[i-1].CostPerNight), int64(listings[i].CostPerNight))
	}
}

func (suite *DataLayerIntegrationTestSuite) TestZeroReviewPropertyListing() {
	ctx := context.Background()
	owner := suite.createTestUser()
	city := "Quietville-" + uuid.NewString()

	property := suite.createTestProperty(owner.ID, city, 100)

	// Listed with a zero average while it has no reviews
	listings, err := suite.properties.Search(ctx, repositories.PropertySearchFilter{City: city}, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listings, 1)
	assert.Equal(suite.T(), property.ID, listings[0].ID)
	assert.Zero(suite.T(), listings[0].AverageRating)

	// Excluded once any minimum rating applies
	rated, err := suite.properties.Search(ctx, repositories.PropertySearchFilter{
		City:          city,
		MinimumRating: float64Ptr(1),
	}, 10)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), rated)

	suite.addReview(owner.ID, property.ID, 4)
	rated, err = suite.properties.Search(ctx, repositories.PropertySearchFilter{
		City:          city,
		MinimumRating: float64Ptr(4),
	}, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rated, 1)
	assert.Equal(suite.T(), 4.0, rated[0].AverageRating)
}

func (suite *DataLayerIntegrationTestSuite) TestReservationsOrderedAndCapped() {
	ctx := context.Background()
	guest := suite.createTestUser()
	owner := suite.createTestUser()
	property := suite.createTestProperty(owner.ID, "Stayville-"+uuid.NewString(), 130)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.addReservation(guest.ID, property.ID, base.AddDate(0, i, 0))
	}

	reservations, err := suite.reservations.ListByGuest(ctx, guest.ID, 2)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), reservations, 2)
	assert.True(suite.T(), reservations[0].StartDate.After(reservations[1].StartDate))
	assert.Equal(suite.T(), property.ID, reservations[0].Property.ID)

	// Unknown guest yields an empty sequence, not an error
	none, err := suite.reservations.ListByGuest(ctx, -1, 10)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), none)
}

func float64Ptr(v float64) *float64 { return &v }

func TestDataLayerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DataLayerIntegrationTestSuite))
}
