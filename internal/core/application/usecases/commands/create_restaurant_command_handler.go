package commands

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles restaurant registration. Every
// referenced payment method must exist; a new restaurant starts active and
// closed.
type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration.
func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle processes the restaurant registration command and returns the
// persisted restaurant.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, id := range cmd.PaymentMethodIDs() {
		if _, err := uow.PaymentMethodRepository().GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	aggregate, err := restaurant.NewRestaurant(
		cmd.Name(), cmd.CuisineName(), cmd.ShippingFee(), cmd.PaymentMethodIDs())
	if err != nil {
		return nil, err
	}

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
