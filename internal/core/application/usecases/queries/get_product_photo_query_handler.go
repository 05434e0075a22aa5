package queries

import (
	"context"

	"github.com/hmucanze19/algafood-api/internal/core/ports"
)

// GetProductPhotoQueryHandler answers the product photo metadata view. The
// photo is a single-row lookup, so it reads through the repository port
// instead of a dedicated read model.
type GetProductPhotoQueryHandler struct {
	photos ports.ProductPhotoRepository
}

// NewGetProductPhotoQueryHandler creates a handler for photo metadata queries.
func NewGetProductPhotoQueryHandler(photos ports.ProductPhotoRepository) GetProductPhotoQueryHandler {
	return GetProductPhotoQueryHandler{photos: photos}
}

// Handle executes the query. An unknown product or a product without a photo
// yields an entity-not-found error.
func (h GetProductPhotoQueryHandler) Handle(ctx context.Context, query GetProductPhotoQuery) (*ProductPhotoResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	photo, err := h.photos.GetByProduct(ctx, query.RestaurantID(), query.ProductID())
	if err != nil {
		return nil, err
	}

	return &ProductPhotoResponse{
		FileName:    photo.FileName(),
		Description: photo.Description(),
		ContentType: photo.ContentType(),
		Size:        photo.Size(),
		StoredName:  photo.StoredName(),
	}, nil
}
