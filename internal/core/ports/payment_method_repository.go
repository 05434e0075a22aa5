package ports

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/payment"
)

// PaymentMethodRepository defines the persistence contract for payment
// method reference data.
type PaymentMethodRepository interface {
	// Add persists a new payment method.
	Add(ctx context.Context, method *payment.Method) error

	// GetByID retrieves a payment method by id.
	// Returns an EntityNotFoundError if no such method exists.
	GetByID(ctx context.Context, id int64) (*payment.Method, error)

	// GetAll retrieves all payment methods ordered by id.
	GetAll(ctx context.Context) ([]*payment.Method, error)
}
