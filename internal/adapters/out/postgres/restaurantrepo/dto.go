// Package restaurantrepo provides data transfer objects and mapping
// functions for restaurant persistence, including the menu and the accepted
// payment method join rows.
package restaurantrepo

import (
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates.
type RestaurantDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(80);index"`
	CuisineName string          `gorm:"type:varchar(60)"`
	ShippingFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	Active      bool
	Open        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products       []ProductDTO       `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	PaymentMethods []PaymentMethodRef `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO represents one menu item row.
type ProductDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64           `gorm:"index"`
	Name         string          `gorm:"type:varchar(80)"`
	Description  string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Active       bool
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// PaymentMethodRef is a join row linking a restaurant to a payment method it
// accepts.
type PaymentMethodRef struct {
	RestaurantID    int64 `gorm:"primaryKey;autoIncrement:false"`
	PaymentMethodID int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName overrides GORM's default naming to use
// "restaurant_payment_methods".
func (PaymentMethodRef) TableName() string {
	return "restaurant_payment_methods"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	products := make([]ProductDTO, 0, len(aggregate.Products()))
	for _, p := range aggregate.Products() {
		products = append(products, ProductDTO{
			ID:           p.ID(),
			RestaurantID: aggregate.ID(),
			Name:         p.Name(),
			Description:  p.Description(),
			Price:        p.Price().Amount(),
			Active:       p.IsActive(),
		})
	}

	methods := make([]PaymentMethodRef, 0, len(aggregate.PaymentMethodIDs()))
	for _, id := range aggregate.PaymentMethodIDs() {
		methods = append(methods, PaymentMethodRef{
			RestaurantID:    aggregate.ID(),
			PaymentMethodID: id,
		})
	}

	return RestaurantDTO{
		ID:             aggregate.ID(),
		Name:           aggregate.Name(),
		CuisineName:    aggregate.CuisineName(),
		ShippingFee:    aggregate.ShippingFee().Amount(),
		Active:         aggregate.IsActive(),
		Open:           aggregate.IsOpen(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Products:       products,
		PaymentMethods: methods,
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	shippingFee, err := kernel.NewMoney(dto.ShippingFee)
	if err != nil {
		return nil, err
	}

	products := make([]*restaurant.Product, 0, len(dto.Products))
	for _, productDTO := range dto.Products {
		price, priceErr := kernel.NewMoney(productDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		products = append(products, restaurant.RestoreProduct(
			productDTO.ID,
			productDTO.Name,
			productDTO.Description,
			price,
			productDTO.Active,
		))
	}

	methodIDs := make([]int64, 0, len(dto.PaymentMethods))
	for _, ref := range dto.PaymentMethods {
		methodIDs = append(methodIDs, ref.PaymentMethodID)
	}

	return restaurant.RestoreRestaurant(
		dto.ID,
		dto.Name,
		dto.CuisineName,
		shippingFee,
		dto.Active,
		dto.Open,
		methodIDs,
		products,
		dto.CreatedAt,
		dto.UpdatedAt,
	), nil
}
