package restaurant

import (
	"errors"
	"fmt"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the aggregate root for a place customers order from. It owns
// its menu of products and the set of payment methods it accepts, and it
// carries the current shipping fee copied onto orders at placement time.
//
// A restaurant has two independent switches: active (registered and visible)
// and open (currently taking orders). An inactive restaurant cannot be open.
type Restaurant struct {
	id               int64
	name             string
	cuisineName      string
	shippingFee      kernel.Money
	active           bool
	open             bool
	paymentMethodIDs []int64
	products         []*Product
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewRestaurant creates an active, closed restaurant accepting the given
// payment methods. Name is required; at least one payment method is required.
func NewRestaurant(name, cuisineName string, shippingFee kernel.Money, paymentMethodIDs []int64) (*Restaurant, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if len(paymentMethodIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("paymentMethodIDs")
	}

	now := time.Now()
	return &Restaurant{
		name:             name,
		cuisineName:      cuisineName,
		shippingFee:      shippingFee,
		active:           true,
		open:             false,
		paymentMethodIDs: paymentMethodIDs,
		createdAt:        now,
		updatedAt:        now,
		isConstructed:    true,
	}, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(
	id int64,
	name, cuisineName string,
	shippingFee kernel.Money,
	active, open bool,
	paymentMethodIDs []int64,
	products []*Product,
	createdAt, updatedAt time.Time,
) *Restaurant {
	return &Restaurant{
		id:               id,
		name:             name,
		cuisineName:      cuisineName,
		shippingFee:      shippingFee,
		active:           active,
		open:             open,
		paymentMethodIDs: paymentMethodIDs,
		products:         products,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// Activate makes the restaurant visible and orderable again.
func (r *Restaurant) Activate() {
	r.active = true
	r.touch()
}

// Deactivate hides the restaurant. A deactivated restaurant is also closed.
func (r *Restaurant) Deactivate() {
	r.active = false
	r.open = false
	r.touch()
}

// Open starts taking orders. Fails if the restaurant is inactive.
func (r *Restaurant) Open() error {
	if !r.active {
		return errs.NewBusinessError("restaurant %s cannot open because it is inactive", r.name)
	}
	r.open = true
	r.touch()
	return nil
}

// Close stops taking orders.
func (r *Restaurant) Close() {
	r.open = false
	r.touch()
}

// AddProduct appends a product to the menu.
func (r *Restaurant) AddProduct(p *Product) {
	r.products = append(r.products, p)
	r.touch()
}

// AcceptsPaymentMethod reports whether the restaurant accepts the given
// payment method.
func (r *Restaurant) AcceptsPaymentMethod(paymentMethodID int64) bool {
	for _, id := range r.paymentMethodIDs {
		if id == paymentMethodID {
			return true
		}
	}
	return false
}

// ProductByID returns the menu product with the given id, or an
// EntityNotFoundError if the restaurant has no such product.
func (r *Restaurant) ProductByID(productID int64) (*Product, error) {
	for _, p := range r.products {
		if p.ID() == productID {
			return p, nil
		}
	}
	return nil, errs.NewEntityNotFoundError(
		fmt.Sprintf("There is no product with id %d in restaurant %d", productID, r.id))
}

func (r *Restaurant) touch() {
	r.updatedAt = time.Now()
}

// ID returns the store-assigned id, zero before first persistence.
func (r *Restaurant) ID() int64 { return r.id }

// AssignID records the store-assigned id after the first insert.
func (r *Restaurant) AssignID(id int64) {
	if r.id == 0 {
		r.id = id
	}
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string { return r.name }

// CuisineName returns the cuisine, possibly empty.
func (r *Restaurant) CuisineName() string { return r.cuisineName }

// ShippingFee returns the current shipping fee.
func (r *Restaurant) ShippingFee() kernel.Money { return r.shippingFee }

// IsActive reports whether the restaurant is registered and visible.
func (r *Restaurant) IsActive() bool { return r.active }

// IsOpen reports whether the restaurant is currently taking orders.
func (r *Restaurant) IsOpen() bool { return r.open }

// PaymentMethodIDs returns the accepted payment method ids.
func (r *Restaurant) PaymentMethodIDs() []int64 { return r.paymentMethodIDs }

// Products returns the menu.
func (r *Restaurant) Products() []*Product { return r.products }

// CreatedAt returns the registration timestamp.
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last modification timestamp.
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }
