package queries

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrGetProductPhotoQueryIsNotConstructed = errors.New(
	"GetProductPhotoQuery must be created via NewGetProductPhotoQuery constructor",
)

// GetProductPhotoQuery retrieves the photo metadata of one menu product.
type GetProductPhotoQuery struct {
	restaurantID int64
	productID    int64

	guard guard.ConstructorGuard
}

// NewGetProductPhotoQuery creates a photo query for the given product.
func NewGetProductPhotoQuery(restaurantID, productID int64) (GetProductPhotoQuery, error) {
	if restaurantID <= 0 {
		return GetProductPhotoQuery{}, errs.NewValueIsRequiredError("restaurantID")
	}
	if productID <= 0 {
		return GetProductPhotoQuery{}, errs.NewValueIsRequiredError("productID")
	}
	return GetProductPhotoQuery{
		restaurantID: restaurantID,
		productID:    productID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductPhotoQuery) Validate() error {
	return q.guard.Validate(ErrGetProductPhotoQueryIsNotConstructed)
}

// RestaurantID returns the restaurant the product belongs to.
func (q GetProductPhotoQuery) RestaurantID() int64 { return q.restaurantID }

// ProductID returns the product whose photo is requested.
func (q GetProductPhotoQuery) ProductID() int64 { return q.productID }

// ProductPhotoResponse is the photo metadata view. StoredName locates the
// file in photo storage and is never serialized to clients.
type ProductPhotoResponse struct {
	FileName    string `json:"fileName"`
	Description string `json:"description,omitempty"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`

	StoredName string `json:"-"`
}
