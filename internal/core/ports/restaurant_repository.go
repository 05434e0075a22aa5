package ports

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, including their menu and accepted payment methods.
type RestaurantRepository interface {
	// Add persists a new restaurant. The store assigns the numeric id.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant and its menu.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// GetByID retrieves a restaurant with its menu and payment methods.
	// Returns an EntityNotFoundError if no such restaurant exists.
	GetByID(ctx context.Context, id int64) (*restaurant.Restaurant, error)
}
