package kernel

import (
	"fmt"

	"signhero/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount in the
// shop's single operating currency. It wraps shopspring/decimal to avoid
// floating-point drift in prices, totals, and late fees.
//
// The zero value is a valid amount of zero dollars. Negative amounts cannot be
// constructed.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero dollars.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Returns an error if the amount is negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromInt creates a Money from a whole-dollar amount.
// Returns an error if the amount is negative.
func NewMoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "95.00". Used when rehydrating amounts from persistence.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// A negative factor is treated as zero; callers scale by day counts which are
// never negative.
func (m Money) MulInt(factor int) Money {
	if factor <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for equality by numeric value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with two decimal places, e.g. "95.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
