package ports

import (
	"context"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and its line items transactionally. The store
	// assigns the numeric id; the repository assigns the order code exactly
	// once before the insert.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a state change to an existing order. Line items are
	// immutable after creation and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByCode retrieves an order with its line items by its unique code.
	// Returns an EntityNotFoundError if no such order exists.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// GetStaleCreated retrieves orders still in CREATED status whose creation
	// timestamp is before the given cutoff. Used by the expiration job.
	GetStaleCreated(ctx context.Context, before time.Time) ([]*order.Order, error)
}
