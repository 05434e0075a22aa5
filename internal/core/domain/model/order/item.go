package order

import (
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// Item is a line item owned by exactly one order. It snapshots the product
// name and unit price at ordering time, so later menu changes never affect
// a placed order.
type Item struct {
	id          int64
	productID   int64
	productName string
	quantity    int
	unitPrice   kernel.Money
	total       kernel.Money
	observation string
}

// NewItem creates a line item for the given product snapshot.
// Quantity must be at least 1.
func NewItem(productID int64, productName string, quantity int, unitPrice kernel.Money, observation string) (*Item, error) {
	if productID <= 0 {
		return nil, errs.NewValueIsRequiredError("productID")
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("productName")
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	return &Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		observation: observation,
	}, nil
}

// RestoreItem reconstructs a line item from persistence without revalidating.
func RestoreItem(id, productID int64, productName string, quantity int, unitPrice, total kernel.Money, observation string) *Item {
	return &Item{
		id:          id,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		total:       total,
		observation: observation,
	}
}

// computeTotal recomputes the line total as quantity × unit price.
// Called by the owning order whenever it recomputes its own total.
func (i *Item) computeTotal() {
	i.total = i.unitPrice.MulInt(i.quantity)
}

// ID returns the store-assigned line item id, zero before first persistence.
func (i *Item) ID() int64 { return i.id }

// ProductID returns the referenced product id.
func (i *Item) ProductID() int64 { return i.productID }

// ProductName returns the product name snapshot.
func (i *Item) ProductName() string { return i.productName }

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the unit price snapshot.
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// Total returns the computed line total. Only valid after the owning order
// has invoked ComputeTotal.
func (i *Item) Total() kernel.Money { return i.total }

// Observation returns the free-form customer note for this item.
func (i *Item) Observation() string { return i.observation }
