package restaurant

import (
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// Product is a menu item owned by a restaurant. Only active products can be
// ordered; the unit price is copied onto the order item at ordering time.
type Product struct {
	id          int64
	name        string
	description string
	price       kernel.Money
	active      bool
}

// NewProduct creates an active product with the given name and price.
func NewProduct(name, description string, price kernel.Money) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		name:        name,
		description: description,
		price:       price,
		active:      true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id int64, name, description string, price kernel.Money, active bool) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		active:      active,
	}
}

// ID returns the store-assigned product id, zero before first persistence.
func (p *Product) ID() int64 { return p.id }

// AssignID records the store-assigned id after the first insert.
func (p *Product) AssignID(id int64) {
	if p.id == 0 {
		p.id = id
	}
}

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Description returns the product description, possibly empty.
func (p *Product) Description() string { return p.description }

// Price returns the current unit price.
func (p *Product) Price() kernel.Money { return p.price }

// IsActive reports whether the product can currently be ordered.
func (p *Product) IsActive() bool { return p.active }
