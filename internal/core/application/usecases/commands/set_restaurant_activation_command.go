package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrSetRestaurantActivationCommandIsNotConstructed = errors.New(
	"SetRestaurantActivationCommand must be created via NewSetRestaurantActivationCommand constructor",
)

// SetRestaurantActivationCommand represents a request to activate or
// deactivate a restaurant.
type SetRestaurantActivationCommand struct {
	restaurantID int64
	active       bool

	guard guard.ConstructorGuard
}

// NewSetRestaurantActivationCommand creates a command to set a restaurant's
// activation state.
func NewSetRestaurantActivationCommand(restaurantID int64, active bool) (SetRestaurantActivationCommand, error) {
	if restaurantID <= 0 {
		return SetRestaurantActivationCommand{}, errs.NewValueIsRequiredError("restaurantID")
	}
	return SetRestaurantActivationCommand{
		restaurantID: restaurantID,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRestaurantActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetRestaurantActivationCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant's id.
func (c SetRestaurantActivationCommand) RestaurantID() int64 { return c.restaurantID }

// Active reports whether the restaurant should be activated or deactivated.
func (c SetRestaurantActivationCommand) Active() bool { return c.active }
