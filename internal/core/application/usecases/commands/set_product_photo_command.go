package commands

import (
	"errors"
	"io"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrSetProductPhotoCommandIsNotConstructed = errors.New(
	"SetProductPhotoCommand must be created via NewSetProductPhotoCommand constructor",
)

// SetProductPhotoCommand represents a request to attach a photo to a menu
// product, replacing any photo the product already has. Content is the
// uploaded file stream; it is consumed once by the handler.
type SetProductPhotoCommand struct {
	restaurantID int64
	productID    int64
	fileName     string
	description  string
	contentType  string
	size         int64
	content      io.Reader

	guard guard.ConstructorGuard
}

// NewSetProductPhotoCommand creates a command to set a product's photo.
func NewSetProductPhotoCommand(restaurantID, productID int64, fileName, description, contentType string, size int64, content io.Reader) (SetProductPhotoCommand, error) {
	if restaurantID <= 0 {
		return SetProductPhotoCommand{}, errs.NewValueIsRequiredError("restaurantID")
	}
	if productID <= 0 {
		return SetProductPhotoCommand{}, errs.NewValueIsRequiredError("productID")
	}
	if fileName == "" {
		return SetProductPhotoCommand{}, errs.NewValueIsRequiredError("fileName")
	}
	if contentType == "" {
		return SetProductPhotoCommand{}, errs.NewValueIsRequiredError("contentType")
	}
	if size <= 0 {
		return SetProductPhotoCommand{}, errs.NewValueIsInvalidError("size")
	}
	if content == nil {
		return SetProductPhotoCommand{}, errs.NewValueIsRequiredError("content")
	}
	return SetProductPhotoCommand{
		restaurantID: restaurantID,
		productID:    productID,
		fileName:     fileName,
		description:  description,
		contentType:  contentType,
		size:         size,
		content:      content,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductPhotoCommand) Validate() error {
	return c.guard.Validate(ErrSetProductPhotoCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant's id.
func (c SetProductPhotoCommand) RestaurantID() int64 { return c.restaurantID }

// ProductID returns the target product's id.
func (c SetProductPhotoCommand) ProductID() int64 { return c.productID }

// FileName returns the uploaded file name.
func (c SetProductPhotoCommand) FileName() string { return c.fileName }

// Description returns the photo description, possibly empty.
func (c SetProductPhotoCommand) Description() string { return c.description }

// ContentType returns the uploaded file's media type.
func (c SetProductPhotoCommand) ContentType() string { return c.contentType }

// Size returns the uploaded file size in bytes.
func (c SetProductPhotoCommand) Size() int64 { return c.size }

// Content returns the uploaded file stream.
func (c SetProductPhotoCommand) Content() io.Reader { return c.content }
