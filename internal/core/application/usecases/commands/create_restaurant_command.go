package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a new restaurant.
type CreateRestaurantCommand struct {
	name             string
	cuisineName      string
	shippingFee      kernel.Money
	paymentMethodIDs []int64

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// Name and at least one payment method are required.
func NewCreateRestaurantCommand(
	name, cuisineName string, shippingFee kernel.Money, paymentMethodIDs []int64,
) (CreateRestaurantCommand, error) {
	if name == "" {
		return CreateRestaurantCommand{}, errs.NewValueIsRequiredError("name")
	}
	if len(paymentMethodIDs) == 0 {
		return CreateRestaurantCommand{}, errs.NewValueIsRequiredError("paymentMethodIds")
	}
	for _, id := range paymentMethodIDs {
		if id <= 0 {
			return CreateRestaurantCommand{}, errs.NewValueIsInvalidError("paymentMethodIds")
		}
	}

	return CreateRestaurantCommand{
		name:             name,
		cuisineName:      cuisineName,
		shippingFee:      shippingFee,
		paymentMethodIDs: paymentMethodIDs,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Name returns the restaurant name.
func (c CreateRestaurantCommand) Name() string { return c.name }

// CuisineName returns the cuisine, possibly empty.
func (c CreateRestaurantCommand) CuisineName() string { return c.cuisineName }

// ShippingFee returns the shipping fee charged per order.
func (c CreateRestaurantCommand) ShippingFee() kernel.Money { return c.shippingFee }

// PaymentMethodIDs returns the payment methods the restaurant accepts.
func (c CreateRestaurantCommand) PaymentMethodIDs() []int64 { return c.paymentMethodIDs }
