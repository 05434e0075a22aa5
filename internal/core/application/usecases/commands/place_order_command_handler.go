package commands

import (
	"context"
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order placement. It checks the restaurant
// is active, open, and accepts the chosen payment method, snapshots product
// prices into line items, assigns the shipping fee, computes the total, and
// persists the order transactionally.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order placement command and returns the persisted
// order, with its store-assigned id and code.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	rest, err := uow.RestaurantRepository().GetByID(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !rest.IsActive() {
		return nil, errs.NewBusinessError("restaurant %s is inactive and cannot accept orders", rest.Name())
	}
	if !rest.IsOpen() {
		return nil, errs.NewBusinessError("restaurant %s is closed and cannot accept orders", rest.Name())
	}

	method, err := uow.PaymentMethodRepository().GetByID(ctx, cmd.PaymentMethodID())
	if err != nil {
		return nil, err
	}
	if !rest.AcceptsPaymentMethod(method.ID()) {
		return nil, errs.NewBusinessError(
			"payment method '%s' is not accepted by restaurant %s", method.Description(), rest.Name())
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		product, productErr := rest.ProductByID(input.ProductID)
		if productErr != nil {
			// A missing product on an otherwise valid request is a business
			// failure of the placement, not a missing resource.
			return nil, errs.NewBusinessErrorWithCause(productErr.Error(), productErr)
		}
		if !product.IsActive() {
			return nil, errs.NewBusinessError(
				"product %s is inactive and cannot be ordered", product.Name())
		}

		item, itemErr := order.NewItem(
			product.ID(), product.Name(), input.Quantity, product.Price(), input.Observation)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.CustomerID(), rest.ID(), method.ID(), cmd.DeliveryAddress(), items)
	if err != nil {
		return nil, err
	}

	// Fee before total: ComputeTotal reads the assigned fee.
	newOrder.AssignShippingFee(rest.ShippingFee())
	newOrder.ComputeTotal()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order placement: %w", err)
	}

	return newOrder, nil
}
