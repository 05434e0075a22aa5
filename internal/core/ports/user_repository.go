package ports

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
)

// UserRepository defines the persistence contract for customer accounts.
type UserRepository interface {
	// Add persists a new user. Fails with an EntityInUseError if the email
	// is already registered.
	Add(ctx context.Context, user *account.User) error

	// GetByID retrieves a user by id.
	// Returns an EntityNotFoundError if no such user exists.
	GetByID(ctx context.Context, id int64) (*account.User, error)

	// GetByEmail retrieves a user by lowercased email.
	// Returns an EntityNotFoundError if no such user exists.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
