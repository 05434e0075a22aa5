package queries

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrGetPaymentMethodsQueryIsNotConstructed = errors.New(
	"GetPaymentMethodsQuery must be created via NewGetPaymentMethodsQuery constructor",
)

// GetPaymentMethodsQuery retrieves all payment methods.
type GetPaymentMethodsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPaymentMethodsQuery creates a parameterless payment method listing
// query.
func NewGetPaymentMethodsQuery() GetPaymentMethodsQuery {
	return GetPaymentMethodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentMethodsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentMethodsQueryIsNotConstructed)
}

// PaymentMethodResponse is one row of the payment method listing.
type PaymentMethodResponse struct {
	ID          int64
	Description string
}
