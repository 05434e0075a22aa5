package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrSetRestaurantOpeningCommandIsNotConstructed = errors.New(
	"SetRestaurantOpeningCommand must be created via NewSetRestaurantOpeningCommand constructor",
)

// SetRestaurantOpeningCommand represents a request to open or close a
// restaurant for orders.
type SetRestaurantOpeningCommand struct {
	restaurantID int64
	open         bool

	guard guard.ConstructorGuard
}

// NewSetRestaurantOpeningCommand creates a command to set a restaurant's
// opening state.
func NewSetRestaurantOpeningCommand(restaurantID int64, open bool) (SetRestaurantOpeningCommand, error) {
	if restaurantID <= 0 {
		return SetRestaurantOpeningCommand{}, errs.NewValueIsRequiredError("restaurantID")
	}
	return SetRestaurantOpeningCommand{
		restaurantID: restaurantID,
		open:         open,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRestaurantOpeningCommand) Validate() error {
	return c.guard.Validate(ErrSetRestaurantOpeningCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant's id.
func (c SetRestaurantOpeningCommand) RestaurantID() int64 { return c.restaurantID }

// Open reports whether the restaurant should be opened or closed.
func (c SetRestaurantOpeningCommand) Open() bool { return c.open }
