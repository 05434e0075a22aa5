// Package paymentrepo provides persistence for payment method reference
// data.
package paymentrepo

import (
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/payment"
)

// PaymentMethodDTO represents one payment method row.
type PaymentMethodDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"type:varchar(60);uniqueIndex"`
}

// TableName overrides GORM's default naming to use "payment_methods".
func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

func fromDomain(method *payment.Method) PaymentMethodDTO {
	return PaymentMethodDTO{
		ID:          method.ID(),
		Description: method.Description(),
	}
}

func toDomain(dto PaymentMethodDTO) *payment.Method {
	return payment.RestoreMethod(dto.ID, dto.Description)
}
