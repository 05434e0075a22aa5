package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/ports"
)

// ExpireStaleOrdersCommandHandler cancels orders that were placed but never
// confirmed within the allowed age. All expirations run in one transaction;
// the cancellation events are published after the commit.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale order
// expiration.
func NewExpireStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{uowFactory: uowFactory, publisher: publisher, logger: logger}
}

// Handle expires all stale orders and returns how many were cancelled.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.MaxAge())
	stale, err := uow.OrderRepository().GetStaleCreated(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		publishEvents(ctx, h.publisher, h.logger, aggregate)
	}
	return len(stale), nil
}
