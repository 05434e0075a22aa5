// Package commands contains business operations that modify system state.
// Each operation is a pair of a constructor-validated command and a handler
// that manages the transaction, invokes the domain, and persists the result.
package commands

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare the narrowest unit of work they need, so tests
// can mock exactly the repositories a command touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PaymentMethodRepoFactory provides access to the payment method repository within a transaction.
	PaymentMethodRepoFactory interface {
		PaymentMethodRepository() ports.PaymentMethodRepository
	}

	// ProductPhotoRepoFactory provides access to the product photo repository within a transaction.
	ProductPhotoRepoFactory interface {
		ProductPhotoRepository() ports.ProductPhotoRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (confirm, cancel, deliver, expire).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages transactions for order placement, which reads the
	// restaurant and the payment method and writes the order atomically.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		PaymentMethodRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// CatalogUoW manages transactions for restaurant creation, which
	// verifies the referenced payment methods while writing the restaurant.
	CatalogUoW interface {
		TxManager
		RestaurantRepoFactory
		PaymentMethodRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// RestaurantUoW manages transactions for restaurant-only operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// PhotoUoW manages transactions for product photo replacement, which
	// reads the restaurant to verify the product and writes the photo row.
	PhotoUoW interface {
		TxManager
		RestaurantRepoFactory
		ProductPhotoRepoFactory
	}

	// PhotoUoWFactory creates new photo unit of work instances.
	PhotoUoWFactory interface {
		Create() PhotoUoW
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
