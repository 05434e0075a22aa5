// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their database rows.
package orderrepo

import (
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary values are stored as numeric columns; the status is stored as its
// string name so the table stays readable and new statuses never renumber
// existing rows.
type OrderDTO struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	Code            string     `gorm:"type:varchar(36);uniqueIndex"`
	CustomerID      int64      `gorm:"index"`
	RestaurantID    int64      `gorm:"index"`
	PaymentMethodID int64      `gorm:""`
	Address         AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`

	Status      string `gorm:"type:varchar(20);index"`
	CreatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
	DeliveredAt *time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row. The unit price is the snapshot
// taken at placement time, not a reference to the product's current price.
type ItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"index"`
	ProductID   int64
	ProductName string          `gorm:"type:varchar(80)"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Observation string
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded delivery address columns within the
// orders table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(100)"`
	Number     string `gorm:"type:varchar(20)"`
	Complement string `gorm:"type:varchar(60)"`
	District   string `gorm:"type:varchar(60)"`
	City       string `gorm:"type:varchar(60)"`
	State      string `gorm:"type:varchar(60)"`
	PostalCode string `gorm:"type:varchar(20);column:postal_code"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	addr := aggregate.DeliveryAddress()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID(),
			OrderID:     aggregate.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Total:       item.Total().Amount(),
			Observation: item.Observation(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		Code:            aggregate.Code(),
		CustomerID:      aggregate.CustomerID(),
		RestaurantID:    aggregate.RestaurantID(),
		PaymentMethodID: aggregate.PaymentMethodID(),
		Address: AddressDTO{
			Street:     addr.Street(),
			Number:     addr.Number(),
			Complement: addr.Complement(),
			District:   addr.District(),
			City:       addr.City(),
			State:      addr.State(),
			PostalCode: addr.PostalCode(),
		},
		Subtotal:    aggregate.Subtotal().Amount(),
		ShippingFee: aggregate.ShippingFee().Amount(),
		Total:       aggregate.Total().Amount(),
		Status:      string(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		ConfirmedAt: aggregate.ConfirmedAt(),
		CancelledAt: aggregate.CancelledAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Items:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	addr, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.Complement,
		dto.Address.District,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		total, totalErr := kernel.NewMoney(itemDTO.Total)
		if totalErr != nil {
			return nil, totalErr
		}
		items = append(items, order.RestoreItem(
			itemDTO.ID,
			itemDTO.ProductID,
			itemDTO.ProductName,
			itemDTO.Quantity,
			unitPrice,
			total,
			itemDTO.Observation,
		))
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	shippingFee, err := kernel.NewMoney(dto.ShippingFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Code,
		dto.CustomerID,
		dto.RestaurantID,
		dto.PaymentMethodID,
		addr,
		items,
		subtotal,
		shippingFee,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.ConfirmedAt,
		dto.CancelledAt,
		dto.DeliveredAt,
	)
}
