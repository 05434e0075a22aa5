package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/commands"
)

// OrderExpirationJob cancels orders that stayed in CREATED status for longer
// than the configured age. Runs every minute.
type OrderExpirationJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpirationJob creates the expiration job. maxAge is how long an
// unconfirmed order may wait before being cancelled.
func NewOrderExpirationJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "order_expiration_job"),
	}
}

// Start begins the order expiration job to run every minute.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiration job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiration job failed", "error", err)
			return
		}
		if expired > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiration job started (running every minute)")
	return nil
}

// Stop stops the order expiration job.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
