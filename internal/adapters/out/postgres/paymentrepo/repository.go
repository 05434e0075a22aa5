package paymentrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/payment"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentMethodRepository implements PaymentMethodRepository using GORM.
type GormPaymentMethodRepository struct {
	db *gorm.DB
}

// NewGormPaymentMethodRepository creates a new GORM payment method
// repository.
func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

// Add saves a new payment method. The store assigns the id.
func (r *GormPaymentMethodRepository) Add(ctx context.Context, method *payment.Method) error {
	dto := fromDomain(method)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	method.AssignID(dto.ID)
	return nil
}

// GetByID retrieves a payment method by id.
func (r *GormPaymentMethodRepository) GetByID(ctx context.Context, id int64) (*payment.Method, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto PaymentMethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError(
				fmt.Sprintf("There is no payment method with id %d", id))
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetAll retrieves all payment methods ordered by id.
func (r *GormPaymentMethodRepository) GetAll(ctx context.Context) ([]*payment.Method, error) {
	var dtos []PaymentMethodDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	methods := make([]*payment.Method, 0, len(dtos))
	for _, dto := range dtos {
		methods = append(methods, toDomain(dto))
	}

	return methods, nil
}
