package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler answers the order listing straight from the
// database, joining the restaurant name in one query.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of order summaries, newest
// first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.code,
			o.status,
			o.total,
			r.name,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummaryResponse
		err = rows.Scan(
			&summary.Code,
			&summary.Status,
			&summary.Total,
			&summary.RestaurantName,
			&summary.CreatedAt,
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
