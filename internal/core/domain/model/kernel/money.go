package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object holding an exact, non-negative decimal amount.
// All prices and totals in the domain are Money; binary floating point never
// touches a monetary value.
//
// Money is immutable: arithmetic methods return a new value. The zero value is
// a valid representation of zero, so Money can be summed without a constructor
// guard; negativity is rejected at the boundary by NewMoney.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount. Returns ValueIsInvalidError
// when the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromInt creates a Money from a whole number of currency units.
// Convenience for tests and fixtures.
func NewMoneyFromInt(units int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(units))
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by an integer quantity.
// The quantity may be negative; callers decide whether that is legal.
func (m Money) MulQuantity(quantity int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(quantity))}
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two Money values numerically (scale-insensitive).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount in plain decimal notation.
func (m Money) String() string {
	return m.amount.String()
}
