package ports

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
)

// ProductPhotoRepository persists product photo metadata. The file bytes
// live in PhotoStorage; rows here only describe them. A product has at most
// one photo.
type ProductPhotoRepository interface {
	// Add persists the photo metadata for a product.
	Add(ctx context.Context, photo *restaurant.ProductPhoto) error

	// GetByProduct retrieves the photo of the given product. Returns an
	// EntityNotFoundError if the product has no photo.
	GetByProduct(ctx context.Context, restaurantID, productID int64) (*restaurant.ProductPhoto, error)

	// Delete removes the photo metadata. The stored file is not touched.
	Delete(ctx context.Context, photo *restaurant.ProductPhoto) error
}
