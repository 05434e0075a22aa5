package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler answers the restaurant listing straight from
// the database.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listing
// queries.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the query and returns all restaurants ordered by name.
func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) ([]RestaurantSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]RestaurantSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cuisine_name,
			shipping_fee,
			active,
			open
		FROM restaurants
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary RestaurantSummaryResponse
		err = rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.CuisineName,
			&summary.ShippingFee,
			&summary.Active,
			&summary.Open,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
