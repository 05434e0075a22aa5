package commands

import (
	"context"
)

// SetRestaurantOpeningCommandHandler handles opening and closing
// restaurants. Opening an inactive restaurant fails as a business rule.
type SetRestaurantOpeningCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewSetRestaurantOpeningCommandHandler creates a handler for restaurant
// opening changes.
func NewSetRestaurantOpeningCommandHandler(uowFactory RestaurantUoWFactory) SetRestaurantOpeningCommandHandler {
	return SetRestaurantOpeningCommandHandler{uowFactory: uowFactory}
}

// Handle processes the opening change command.
func (h *SetRestaurantOpeningCommandHandler) Handle(ctx context.Context, cmd SetRestaurantOpeningCommand) error {
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

	if cmd.Open() {
		if err = aggregate.Open(); err != nil {
			return err
		}
	} else {
		aggregate.Close()
	}

	if err = uow.RestaurantRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
