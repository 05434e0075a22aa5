package queries

import (
	"errors"
	"time"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
	"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
)

// GetOrderByCodeQuery retrieves one order with its line items by code.
type GetOrderByCodeQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetOrderByCodeQuery creates a query for the order with the given code.
func NewGetOrderByCodeQuery(code string) (GetOrderByCodeQuery, error) {
	if code == "" {
		return GetOrderByCodeQuery{}, errs.NewValueIsRequiredError("code")
	}
	return GetOrderByCodeQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

// Code returns the order code.
func (q GetOrderByCodeQuery) Code() string { return q.code }

// OrderDetailsResponse is the full order view.
type OrderDetailsResponse struct {
	Code            string
	Status          string
	CustomerID      int64
	RestaurantID    int64
	RestaurantName  string
	PaymentMethodID int64

	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	PostalCode string

	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal

	CreatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
	DeliveredAt *time.Time

	Items []OrderItemResponse
}

// OrderItemResponse is one line item of the full order view.
type OrderItemResponse struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Observation string
}
