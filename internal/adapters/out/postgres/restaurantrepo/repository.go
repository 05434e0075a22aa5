package restaurantrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant, its menu, and its payment method join rows.
// The store assigns the numeric ids, which are written back to the aggregate.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.AssignID(dto.ID)
	assignProductIDs(aggregate, dto)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing restaurant. Menu rows are upserted and
// the payment method join rows are replaced wholesale.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Omit("Products", "PaymentMethods").
		Updates(map[string]any{
			"name":         dto.Name,
			"cuisine_name": dto.CuisineName,
			"shipping_fee": dto.ShippingFee,
			"active":       dto.Active,
			"open":         dto.Open,
			"updated_at":   dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for i := range dto.Products {
		dto.Products[i].RestaurantID = dto.ID
		if err := r.db.WithContext(ctx).Save(&dto.Products[i]).Error; err != nil {
			return err
		}
	}
	assignProductIDs(aggregate, dto)

	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", dto.ID).
		Delete(&PaymentMethodRef{}).Error
	if err != nil {
		return err
	}
	if len(dto.PaymentMethods) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.PaymentMethods).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves a restaurant with its menu and payment methods.
func (r *GormRestaurantRepository) GetByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).
		Preload("Products").
		Preload("PaymentMethods").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError(
				fmt.Sprintf("There is no restaurant with id %d", id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// assignProductIDs writes store-assigned product ids back to the aggregate.
// DTO rows are built from the aggregate's menu in order, so positions match.
func assignProductIDs(aggregate *restaurant.Restaurant, dto RestaurantDTO) {
	products := aggregate.Products()
	for i, row := range dto.Products {
		if i < len(products) {
			products[i].AssignID(row.ID)
		}
	}
}
