package commands

import (
	"context"
	"log/slog"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/core/ports"
)

// ConfirmOrderCommandHandler handles order confirmation. The status change
// is persisted transactionally; the confirmation event is published after
// the commit, so a publisher outage never rolls back the confirmation.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory, publisher: publisher, logger: logger}
}

// Handle processes the order confirmation command and returns the confirmed
// order.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	aggregate, err := uow.OrderRepository().GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Confirm(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvents(ctx, h.publisher, h.logger, aggregate)
	return aggregate, nil
}

// publishEvents drains the aggregate's pending events into the publisher.
// Publish failures are logged, not propagated: the state change is already
// committed.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, aggregate *order.Order) {
	events := aggregate.ReleaseEvents()
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events); err != nil {
		logger.Error("failed to publish order events",
			"order_code", aggregate.Code(), "error", err)
	}
}
