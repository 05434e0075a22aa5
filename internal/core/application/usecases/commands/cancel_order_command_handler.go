package commands

import (
	"context"
	"log/slog"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation. The status change is
// persisted transactionally and the cancellation event is published after
// the commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, publisher: publisher, logger: logger}
}

// Handle processes the order cancellation command and returns the cancelled
// order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Cancel(); err != nil {
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
