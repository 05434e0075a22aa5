package commands

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand represents a request to add a product to a restaurant's
// menu.
type AddProductCommand struct {
	restaurantID int64
	name         string
	description  string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a menu product.
func NewAddProductCommand(restaurantID int64, name, description string, price kernel.Money) (AddProductCommand, error) {
	if restaurantID <= 0 {
		return AddProductCommand{}, errs.NewValueIsRequiredError("restaurantID")
	}
	if name == "" {
		return AddProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	return AddProductCommand{
		restaurantID: restaurantID,
		name:         name,
		description:  description,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant's id.
func (c AddProductCommand) RestaurantID() int64 { return c.restaurantID }

// Name returns the product name.
func (c AddProductCommand) Name() string { return c.name }

// Description returns the product description, possibly empty.
func (c AddProductCommand) Description() string { return c.description }

// Price returns the product unit price.
func (c AddProductCommand) Price() kernel.Money { return c.price }
