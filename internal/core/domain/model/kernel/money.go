package kernel

import (
	"fmt"

	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing an exact monetary amount.
// It wraps shopspring/decimal to avoid binary floating point drift in
// price calculations. The zero value is a valid amount of 0.00.
//
// Money is immutable: arithmetic methods return new values and never
// mutate the receiver.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromFloat creates a Money from a float64 amount.
// Intended for configuration constants and test fixtures where the
// amount is a short literal; calculations should stay in Money.
func MoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// MoneyFromString parses a Money from its decimal string representation.
// Returns a validation error for inputs that are not decimal numbers.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d}, nil
}

// ZeroMoney returns a Money of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// Mul returns the amount multiplied by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// RoundHalfUp returns the amount rounded half-up to two decimal places.
func (m Money) RoundHalfUp() Money {
	// decimal.Round rounds half away from zero, which is half-up for
	// the non-negative amounts this domain produces.
	return Money{amount: m.amount.Round(2)}
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount fixed to two decimal places, e.g. "675.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks the amount against domain constraints.
// Monetary amounts in this domain are never negative.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", m.amount.String()),
		)
	}
	return nil
}
