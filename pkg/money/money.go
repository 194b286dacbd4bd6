// Package money keeps the currency unit in the type system.
//
// Nightly costs are stored in cents but callers quote them in dollars. Every
// dollars→cents conversion in the codebase goes through FromDollars so the
// insert path and the price filters can never disagree on the unit.
package money

import "math"

// Cents is a monetary amount in cents.
type Cents int64

// FromDollars converts a dollar amount to cents.
func FromDollars(dollars float64) Cents {
	return Cents(math.Round(dollars * 100))
}

// Dollars converts the amount back to dollars.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}
