// Package payment provides the payment method reference entity.
package payment

import "github.com/hmucanze19/algafood-api/internal/pkg/errs"

// Method is reference data describing a way to pay for an order, e.g.
// "Credit card". Orders and restaurants hold it by id.
type Method struct {
	id          int64
	description string
}

// NewMethod creates a payment method with the given description.
func NewMethod(description string) (*Method, error) {
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	return &Method{description: description}, nil
}

// RestoreMethod reconstructs a payment method from persistence.
func RestoreMethod(id int64, description string) *Method {
	return &Method{id: id, description: description}
}

// ID returns the store-assigned id, zero before first persistence.
func (m *Method) ID() int64 { return m.id }

// AssignID records the store-assigned id after the first insert.
func (m *Method) AssignID(id int64) {
	if m.id == 0 {
		m.id = id
	}
}

// Description returns the human-readable description.
func (m *Method) Description() string { return m.description }
