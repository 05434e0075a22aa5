package kernel

import (
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount. It wraps decimal.Decimal so that
// totals never accumulate binary floating point error.
//
// The zero value is a valid amount of 0.00; negative amounts can only be
// rejected, never constructed.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("amount must not be negative")
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "9.90" into Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether two amounts represent the same value,
// regardless of exponent ("3.5" equals "3.50").
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "28.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
