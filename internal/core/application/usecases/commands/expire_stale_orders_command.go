package commands

import (
	"errors"
	"time"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand represents a request to cancel all orders that
// have stayed unconfirmed longer than the given age.
type ExpireStaleOrdersCommand struct {
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire orders older
// than maxAge.
func NewExpireStaleOrdersCommand(maxAge time.Duration) (ExpireStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return ExpireStaleOrdersCommand{}, errs.NewValueIsInvalidError("maxAge")
	}
	return ExpireStaleOrdersCommand{maxAge: maxAge, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may stay unconfirmed before expiring.
func (c ExpireStaleOrdersCommand) MaxAge() time.Duration { return c.maxAge }
