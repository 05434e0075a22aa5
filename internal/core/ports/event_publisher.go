package ports

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
)

// EventPublisher is the sink for order domain events. Implementations own
// delivery ordering and at-least-once/exactly-once semantics; the callers'
// only obligation is to publish after the state change has been committed.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.Event) error
}
