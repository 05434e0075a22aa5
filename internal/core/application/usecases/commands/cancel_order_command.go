package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order by its code.
type CancelOrderCommand struct {
	orderCode string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order with the
// given code.
func NewCancelOrderCommand(orderCode string) (CancelOrderCommand, error) {
	if orderCode == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("orderCode")
	}
	return CancelOrderCommand{orderCode: orderCode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderCode returns the code of the order to cancel.
func (c CancelOrderCommand) OrderCode() string { return c.orderCode }
