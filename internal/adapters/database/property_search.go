package database

import (
	"fmt"
	"strings"

	"github.com/lightbnb/marketplace/backend/internal/domain/repositories"
	"github.com/lightbnb/marketplace/backend/pkg/money"
)

// defaultListLimit caps result counts when the caller supplies no limit.
const defaultListLimit = 10

// searchBuilder collects pre-aggregation (WHERE) and post-aggregation
// (HAVING) predicates alongside one ordered parameter list.
//
// Values are only ever appended, so a placeholder number is simply the
// 1-based position of its value at the moment it was bound. Keeping the two
// predicate lists separate prevents a filter on a computed aggregate from
// leaking into the WHERE clause.
type searchBuilder struct {
	args   []interface{}
	where  []string
	having []string
}

// bind appends a value to the parameter list and returns its placeholder index.
func (b *searchBuilder) bind(value interface{}) int {
	b.args = append(b.args, value)
	return len(b.args)
}

func (b *searchBuilder) addWhere(predicate string) {
	b.where = append(b.where, predicate)
}

func (b *searchBuilder) addHaving(predicate string) {
	b.having = append(b.having, predicate)
}

// buildPropertySearch assembles the filtered property search statement and
// its bound parameters.
//
// Price bounds arrive in dollars and are converted to cents here, matching
// the unit used on insert. The minimum-rating filter must be bound after all
// WHERE predicates and the limit is always the final parameter.
func buildPropertySearch(filter repositories.PropertySearchFilter, limit int) (string, []interface{}) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	b := &searchBuilder{}

	if filter.City != "" {
		idx := b.bind("%" + filter.City + "%")
		b.addWhere(fmt.Sprintf("city LIKE $%d", idx))
	}

	if filter.OwnerID != nil {
		idx := b.bind(*filter.OwnerID)
		b.addWhere(fmt.Sprintf("owner_id = $%d", idx))
	}

	switch {
	case filter.MinimumPricePerNight != nil && filter.MaximumPricePerNight != nil:
		minIdx := b.bind(money.FromDollars(*filter.MinimumPricePerNight))
		maxIdx := b.bind(money.FromDollars(*filter.MaximumPricePerNight))
		b.addWhere(fmt.Sprintf("cost_per_night BETWEEN $%d AND $%d", minIdx, maxIdx))
	case filter.MinimumPricePerNight != nil:
		idx := b.bind(money.FromDollars(*filter.MinimumPricePerNight))
		b.addWhere(fmt.Sprintf("cost_per_night >= $%d", idx))
	case filter.MaximumPricePerNight != nil:
		idx := b.bind(money.FromDollars(*filter.MaximumPricePerNight))
		b.addWhere(fmt.Sprintf("cost_per_night <= $%d", idx))
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			properties.id, properties.owner_id, properties.title, properties.description,
			properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
			properties.street, properties.city, properties.province, properties.post_code,
			properties.country, properties.parking_spaces, properties.number_of_bathrooms,
			properties.number_of_bedrooms,
			AVG(property_reviews.rating) AS average_rating
		FROM properties
		LEFT JOIN property_reviews ON property_reviews.property_id = properties.id
	`)

	if len(b.where) > 0 {
		sb.WriteString("WHERE " + strings.Join(b.where, " AND ") + "\n")
	}

	sb.WriteString("GROUP BY properties.id\n")

	// Bound after every WHERE predicate: the rating filter applies to the
	// computed aggregate, so it lives in HAVING, not WHERE. Properties with
	// no reviews have a NULL average and drop out here.
	if filter.MinimumRating != nil {
		idx := b.bind(*filter.MinimumRating)
		b.addHaving(fmt.Sprintf("AVG(property_reviews.rating) >= $%d", idx))
	}
	if len(b.having) > 0 {
		sb.WriteString("HAVING " + strings.Join(b.having, " AND ") + "\n")
	}

	limitIdx := b.bind(limit)
	sb.WriteString(fmt.Sprintf("ORDER BY cost_per_night\nLIMIT $%d", limitIdx))

	return sb.String(), b.args
}
