package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
	"github.com/hmucanze19/algafood-api/internal/core/ports"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// SetProductPhotoCommandHandler handles attaching a photo to a menu product.
// The metadata row and the stored file are replaced together; the previous
// file is removed only after the new row is committed.
type SetProductPhotoCommandHandler struct {
	uowFactory PhotoUoWFactory
	storage    ports.PhotoStorage
}

// NewSetProductPhotoCommandHandler creates a handler for product photo
// replacement.
func NewSetProductPhotoCommandHandler(uowFactory PhotoUoWFactory, storage ports.PhotoStorage) SetProductPhotoCommandHandler {
	return SetProductPhotoCommandHandler{uowFactory: uowFactory, storage: storage}
}

// Handle processes the photo command and returns the stored photo metadata.
func (h *SetProductPhotoCommandHandler) Handle(ctx context.Context, cmd SetProductPhotoCommand) (*restaurant.ProductPhoto, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.RestaurantRepository().GetByID(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	product, err := aggregate.ProductByID(cmd.ProductID())
	if err != nil {
		return nil, err
	}

	previous, err := uow.ProductPhotoRepository().GetByProduct(ctx, cmd.RestaurantID(), cmd.ProductID())
	if err != nil && !errors.Is(err, errs.ErrEntityNotFound) {
		return nil, err
	}
	if previous != nil {
		if err = uow.ProductPhotoRepository().Delete(ctx, previous); err != nil {
			return nil, err
		}
	}

	storedName := uuid.NewString() + "-" + cmd.FileName()
	photo, err := restaurant.NewProductPhoto(
		cmd.RestaurantID(), product.ID(), storedName,
		cmd.FileName(), cmd.Description(), cmd.ContentType(), cmd.Size())
	if err != nil {
		return nil, err
	}

	if err = uow.ProductPhotoRepository().Add(ctx, photo); err != nil {
		return nil, err
	}
	if err = h.storage.Store(ctx, storedName, cmd.Content()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if previous != nil {
		// A removal failure leaves an orphan file behind, never a photo row
		// pointing at a missing file.
		_ = h.storage.Remove(ctx, previous.StoredName())
	}

	return photo, nil
}
