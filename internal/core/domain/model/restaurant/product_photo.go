package restaurant

import (
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// ProductPhoto is the photo attached to a menu product. A product carries at
// most one photo; setting a new one replaces the previous metadata and file.
// StoredName is the unique name the file lives under in photo storage,
// FileName is the name the client uploaded.
type ProductPhoto struct {
	restaurantID int64
	productID    int64
	storedName   string
	fileName     string
	description  string
	contentType  string
	size         int64
}

// NewProductPhoto creates the photo metadata for a product.
func NewProductPhoto(restaurantID, productID int64, storedName, fileName, description, contentType string, size int64) (*ProductPhoto, error) {
	if restaurantID <= 0 {
		return nil, errs.NewValueIsRequiredError("restaurantID")
	}
	if productID <= 0 {
		return nil, errs.NewValueIsRequiredError("productID")
	}
	if storedName == "" {
		return nil, errs.NewValueIsRequiredError("storedName")
	}
	if fileName == "" {
		return nil, errs.NewValueIsRequiredError("fileName")
	}
	if contentType == "" {
		return nil, errs.NewValueIsRequiredError("contentType")
	}
	if size <= 0 {
		return nil, errs.NewValueIsInvalidError("size")
	}

	return &ProductPhoto{
		restaurantID: restaurantID,
		productID:    productID,
		storedName:   storedName,
		fileName:     fileName,
		description:  description,
		contentType:  contentType,
		size:         size,
	}, nil
}

// RestoreProductPhoto reconstructs photo metadata from persistence.
func RestoreProductPhoto(restaurantID, productID int64, storedName, fileName, description, contentType string, size int64) *ProductPhoto {
	return &ProductPhoto{
		restaurantID: restaurantID,
		productID:    productID,
		storedName:   storedName,
		fileName:     fileName,
		description:  description,
		contentType:  contentType,
		size:         size,
	}
}

// RestaurantID returns the restaurant the photographed product belongs to.
func (p *ProductPhoto) RestaurantID() int64 { return p.restaurantID }

// ProductID returns the photographed product's id.
func (p *ProductPhoto) ProductID() int64 { return p.productID }

// StoredName returns the name the file is stored under.
func (p *ProductPhoto) StoredName() string { return p.storedName }

// FileName returns the original upload file name.
func (p *ProductPhoto) FileName() string { return p.fileName }

// Description returns the photo description, possibly empty.
func (p *ProductPhoto) Description() string { return p.description }

// ContentType returns the photo's media type.
func (p *ProductPhoto) ContentType() string { return p.contentType }

// Size returns the file size in bytes.
func (p *ProductPhoto) Size() int64 { return p.size }
