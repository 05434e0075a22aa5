package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to confirm an order by its code.
type ConfirmOrderCommand struct {
	orderCode string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the order with the
// given code.
func NewConfirmOrderCommand(orderCode string) (ConfirmOrderCommand, error) {
	if orderCode == "" {
		return ConfirmOrderCommand{}, errs.NewValueIsRequiredError("orderCode")
	}
	return ConfirmOrderCommand{orderCode: orderCode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderCode returns the code of the order to confirm.
func (c ConfirmOrderCommand) OrderCode() string { return c.orderCode }
