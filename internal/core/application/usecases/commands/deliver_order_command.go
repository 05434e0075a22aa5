package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a request to mark an order as delivered,
// by its code.
type DeliverOrderCommand struct {
	orderCode string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark the order with the given
// code as delivered.
func NewDeliverOrderCommand(orderCode string) (DeliverOrderCommand, error) {
	if orderCode == "" {
		return DeliverOrderCommand{}, errs.NewValueIsRequiredError("orderCode")
	}
	return DeliverOrderCommand{orderCode: orderCode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderCode returns the code of the order to deliver.
func (c DeliverOrderCommand) OrderCode() string { return c.orderCode }
