package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByCodeQueryHandler answers the full order view straight from the
// database.
type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByCodeQueryHandler creates a handler for single order queries.
func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle executes the query and returns the order with its line items, or an
// entity-not-found error if the code is unknown.
func (h GetOrderByCodeQueryHandler) Handle(ctx context.Context, query GetOrderByCodeQuery) (*OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var details OrderDetailsResponse
	var orderID int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			o.status,
			o.customer_id,
			o.restaurant_id,
			r.name,
			o.payment_method_id,
			o.delivery_street,
			o.delivery_number,
			o.delivery_complement,
			o.delivery_district,
			o.delivery_city,
			o.delivery_state,
			o.delivery_postal_code,
			o.subtotal,
			o.shipping_fee,
			o.total,
			o.created_at,
			o.confirmed_at,
			o.cancelled_at,
			o.delivered_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.code = ?
	`, query.Code()).Row()

	err := row.Scan(
		&orderID,
		&details.Code,
		&details.Status,
		&details.CustomerID,
		&details.RestaurantID,
		&details.RestaurantName,
		&details.PaymentMethodID,
		&details.Street,
		&details.Number,
		&details.Complement,
		&details.District,
		&details.City,
		&details.State,
		&details.PostalCode,
		&details.Subtotal,
		&details.ShippingFee,
		&details.Total,
		&details.CreatedAt,
		&details.ConfirmedAt,
		&details.CancelledAt,
		&details.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewEntityNotFoundError(
				fmt.Sprintf("There is no order with code %s", query.Code()))
		}
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price,
			total,
			observation
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		err = rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Total,
			&item.Observation,
		)
		if err != nil {
			return nil, err
		}
		details.Items = append(details.Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &details, nil
}
