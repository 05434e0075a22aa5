// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work maintains one database transaction across the
// repositories a business operation touches, and tracks every aggregate
// modified within it so callers can process domain events after the commit.
//
// Each business operation gets its own instance from the factory; instances
// are not safe for concurrent use.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/accountrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/orderrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/paymentrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/restaurantrepo"
	"github.com/hmucanze19/algafood-api/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        int64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each Create call returns a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates modified inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin again on an instance with
// an open transaction is a no-op, never a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. Returns an error if no transaction is
// active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns an error if no transaction is
// active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// RestaurantRepository returns a restaurant repository bound to the current
// transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the current transaction,
// or to the main connection if none is active.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return accountrepo.NewGormUserRepository(uow.conn(), uow)
}

// PaymentMethodRepository returns a payment method repository bound to the
// current transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) PaymentMethodRepository() ports.PaymentMethodRepository {
	return paymentrepo.NewGormPaymentMethodRepository(uow.conn())
}

// ProductPhotoRepository returns a product photo repository bound to the
// current transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) ProductPhotoRepository() ports.ProductPhotoRepository {
	return restaurantrepo.NewGormProductPhotoRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id int64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
