package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances, one per request or
// command, to keep concurrent operations isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code must
// explicitly manage the transaction lifecycle; repositories obtained from a
// unit of work run inside its transaction once Begin has been called.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// RestaurantRepository returns a RestaurantRepository bound to the current transaction.
	RestaurantRepository() RestaurantRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// PaymentMethodRepository returns a PaymentMethodRepository bound to the current transaction.
	PaymentMethodRepository() PaymentMethodRepository

	// ProductPhotoRepository returns a ProductPhotoRepository bound to the current transaction.
	ProductPhotoRepository() ProductPhotoRepository
}
