package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderItemInput is one requested line item within a PlaceOrderCommand.
// The unit price is not part of the input: it is snapshotted from the
// product's current price by the handler.
type OrderItemInput struct {
	ProductID   int64
	Quantity    int
	Observation string
}

// PlaceOrderCommand represents a request to place a new order. The customer
// id comes from the authenticated session, never from the request body.
type PlaceOrderCommand struct {
	customerID      int64
	restaurantID    int64
	paymentMethodID int64
	deliveryAddress kernel.Address
	items           []OrderItemInput

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. All references
// must be positive ids, the address must be constructed, and at least one
// item with quantity >= 1 is required.
func NewPlaceOrderCommand(
	customerID, restaurantID, paymentMethodID int64,
	deliveryAddress kernel.Address,
	items []OrderItemInput,
) (PlaceOrderCommand, error) {
	if customerID <= 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("customerID")
	}
	if restaurantID <= 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("restaurantID")
	}
	if paymentMethodID <= 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("paymentMethodID")
	}
	if err := deliveryAddress.Validate(); err != nil {
		return PlaceOrderCommand{}, err
	}
	if len(items) == 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.ProductID <= 0 {
			return PlaceOrderCommand{}, errs.NewValueIsRequiredError("items.productId")
		}
		if item.Quantity < 1 {
			return PlaceOrderCommand{}, errs.NewValueIsInvalidError("items.quantity")
		}
	}

	return PlaceOrderCommand{
		customerID:      customerID,
		restaurantID:    restaurantID,
		paymentMethodID: paymentMethodID,
		deliveryAddress: deliveryAddress,
		items:           items,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the authenticated customer's id.
func (c PlaceOrderCommand) CustomerID() int64 { return c.customerID }

// RestaurantID returns the target restaurant's id.
func (c PlaceOrderCommand) RestaurantID() int64 { return c.restaurantID }

// PaymentMethodID returns the chosen payment method's id.
func (c PlaceOrderCommand) PaymentMethodID() int64 { return c.paymentMethodID }

// DeliveryAddress returns the delivery address.
func (c PlaceOrderCommand) DeliveryAddress() kernel.Address { return c.deliveryAddress }

// Items returns the requested line items.
func (c PlaceOrderCommand) Items() []OrderItemInput { return c.items }
