package queries

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves all restaurant summaries.
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a parameterless restaurant listing query.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// RestaurantSummaryResponse is one row of the restaurant listing.
type RestaurantSummaryResponse struct {
	ID          int64
	Name        string
	CuisineName string
	ShippingFee decimal.Decimal
	Active      bool
	Open        bool
}
