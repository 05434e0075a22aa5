package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPaymentMethodsQueryHandler answers the payment method listing straight
// from the database.
type GetPaymentMethodsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentMethodsQueryHandler creates a handler for payment method
// listing queries.
func NewGetPaymentMethodsQueryHandler(db *gorm.DB) GetPaymentMethodsQueryHandler {
	return GetPaymentMethodsQueryHandler{db: db}
}

// Handle executes the query and returns all payment methods ordered by id.
func (h GetPaymentMethodsQueryHandler) Handle(ctx context.Context, query GetPaymentMethodsQuery) ([]PaymentMethodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	methods := make([]PaymentMethodResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description
		FROM payment_methods
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var method PaymentMethodResponse
		if err = rows.Scan(&method.ID, &method.Description); err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
