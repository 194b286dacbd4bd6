package entities

import "time"

// Reservation represents a guest's booking of a property.
// This layer only reads reservations; bookings are created elsewhere.
type Reservation struct {
	ID         int64     `json:"id" db:"id"`
	GuestID    int64     `json:"guest_id" db:"guest_id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
}

// GuestReservation is a reservation joined with the booked property and that
// property's average review rating.
type GuestReservation struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating float64  `json:"average_rating"`
}
