package postgres

import (
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/accountrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/orderrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/paymentrepo"
	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence DTO.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&paymentrepo.PaymentMethodDTO{},
		&accountrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ProductDTO{},
		&restaurantrepo.PaymentMethodRef{},
		&restaurantrepo.ProductPhotoDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
}
