package commands

import (
	"context"
)

// SetRestaurantActivationCommandHandler handles activating and deactivating
// restaurants. Deactivation also closes the restaurant.
type SetRestaurantActivationCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewSetRestaurantActivationCommandHandler creates a handler for restaurant
// activation changes.
func NewSetRestaurantActivationCommandHandler(uowFactory RestaurantUoWFactory) SetRestaurantActivationCommandHandler {
	return SetRestaurantActivationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the activation change command.
func (h *SetRestaurantActivationCommandHandler) Handle(ctx context.Context, cmd SetRestaurantActivationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.RestaurantRepository().GetByID(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = uow.RestaurantRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
