package restaurantrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// ProductPhotoDTO represents the stored photo metadata of one product. At
// most one row exists per product; the file itself lives in photo storage
// under StoredName.
type ProductPhotoDTO struct {
	ProductID    int64  `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID int64  `gorm:"index"`
	StoredName   string `gorm:"type:varchar(120)"`
	FileName     string `gorm:"type:varchar(80)"`
	Description  string
	ContentType  string `gorm:"type:varchar(60)"`
	Size         int64
}

// TableName overrides GORM's default naming to use "product_photos".
func (ProductPhotoDTO) TableName() string {
	return "product_photos"
}

// GormProductPhotoRepository implements ProductPhotoRepository using GORM.
type GormProductPhotoRepository struct {
	db *gorm.DB
}

// NewGormProductPhotoRepository creates a new GORM product photo repository.
func NewGormProductPhotoRepository(db *gorm.DB) *GormProductPhotoRepository {
	return &GormProductPhotoRepository{db: db}
}

// Add saves the photo metadata for a product.
func (r *GormProductPhotoRepository) Add(ctx context.Context, photo *restaurant.ProductPhoto) error {
	dto := photoFromDomain(photo)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByProduct retrieves the photo of the given product.
func (r *GormProductPhotoRepository) GetByProduct(ctx context.Context, restaurantID, productID int64) (*restaurant.ProductPhoto, error) {
	if restaurantID <= 0 {
		return nil, errs.NewValueIsRequiredError("restaurantID")
	}
	if productID <= 0 {
		return nil, errs.NewValueIsRequiredError("productID")
	}

	var dto ProductPhotoDTO
	err := r.db.WithContext(ctx).
		First(&dto, "restaurant_id = ? AND product_id = ?", restaurantID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError(
				fmt.Sprintf("There is no photo for product %d of restaurant %d", productID, restaurantID))
		}
		return nil, err
	}

	return photoToDomain(dto), nil
}

// Delete removes the photo metadata row.
func (r *GormProductPhotoRepository) Delete(ctx context.Context, photo *restaurant.ProductPhoto) error {
	return r.db.WithContext(ctx).
		Delete(&ProductPhotoDTO{}, "product_id = ?", photo.ProductID()).Error
}

func photoFromDomain(photo *restaurant.ProductPhoto) ProductPhotoDTO {
	return ProductPhotoDTO{
		ProductID:    photo.ProductID(),
		RestaurantID: photo.RestaurantID(),
		StoredName:   photo.StoredName(),
		FileName:     photo.FileName(),
		Description:  photo.Description(),
		ContentType:  photo.ContentType(),
		Size:         photo.Size(),
	}
}

func photoToDomain(dto ProductPhotoDTO) *restaurant.ProductPhoto {
	return restaurant.RestoreProductPhoto(
		dto.RestaurantID,
		dto.ProductID,
		dto.StoredName,
		dto.FileName,
		dto.Description,
		dto.ContentType,
		dto.Size,
	)
}
