package queries

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery retrieves the active products of one restaurant.
type GetRestaurantMenuQuery struct {
	restaurantID int64

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery creates a menu query for the given restaurant.
func NewGetRestaurantMenuQuery(restaurantID int64) (GetRestaurantMenuQuery, error) {
	if restaurantID <= 0 {
		return GetRestaurantMenuQuery{}, errs.NewValueIsRequiredError("restaurantID")
	}
	return GetRestaurantMenuQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetRestaurantMenuQuery) RestaurantID() int64 { return q.restaurantID }

// MenuItemResponse is one active product of the menu view. It doubles as the
// cache payload shape, so the JSON tags are part of the cache format.
type MenuItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
