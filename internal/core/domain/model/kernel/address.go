package kernel

import (
	"errors"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery address value object embedded in an order.
// Street, city, state, and postal code are required; number, complement, and
// district are optional.
//
// Address is immutable after construction.
type Address struct {
	street     string
	number     string
	complement string
	district   string
	city       string
	state      string
	postalCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address.
func NewAddress(street, number, complement, district, city, state, postalCode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if state == "" {
		return Address{}, errs.NewValueIsRequiredError("state")
	}
	if postalCode == "" {
		return Address{}, errs.NewValueIsRequiredError("postalCode")
	}

	return Address{
		street:     street,
		number:     number,
		complement: complement,
		district:   district,
		city:       city,
		state:      state,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string { return a.street }

// Number returns the street number, possibly empty.
func (a Address) Number() string { return a.number }

// Complement returns the address complement, possibly empty.
func (a Address) Complement() string { return a.complement }

// District returns the district, possibly empty.
func (a Address) District() string { return a.district }

// City returns the city name.
func (a Address) City() string { return a.city }

// State returns the state name.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }
