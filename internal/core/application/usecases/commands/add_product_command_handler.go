package commands

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
)

// AddProductCommandHandler handles adding a product to a restaurant's menu.
type AddProductCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddProductCommandHandler creates a handler for menu product addition.
func NewAddProductCommandHandler(uowFactory RestaurantUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the product addition command and returns the created
// product.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (*restaurant.Product, error) {
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

	aggregate, err := uow.RestaurantRepository().GetByID(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	product, err := restaurant.NewProduct(cmd.Name(), cmd.Description(), cmd.Price())
	if err != nil {
		return nil, err
	}
	aggregate.AddProduct(product)

	if err = uow.RestaurantRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
