package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items. The order code is assigned here,
// exactly once, before the insert; the store assigns the numeric id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	aggregate.AssignCode()

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.AssignID(dto.ID)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a state change to an existing order. Line items are immutable
// after placement and are not rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Omit("Items").
		Updates(map[string]any{
			"status":       dto.Status,
			"confirmed_at": dto.ConfirmedAt,
			"cancelled_at": dto.CancelledAt,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCode retrieves an order with its line items by its unique code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError(
				fmt.Sprintf("There is no order with code %s", code))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStaleCreated retrieves orders still in CREATED status placed before the
// given cutoff.
func (r *GormOrderRepository) GetStaleCreated(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND created_at < ?", string(order.StatusCreated), before).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
