package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in GBP with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a decimal.Decimal
func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromInt creates a new Money instance from whole pounds
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundPence rounds the amount to whole pence using round-half-up.
// Statutory liabilities round half away from zero, not to even, so
// banker's rounding must not be used here.
func (m Money) RoundPence() Money {
	return Money{m.Decimal.Round(2)}
}

// Annualise converts a weekly amount to annual (52 weeks)
func (m Money) Annualise() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(52))}
}

// ApplyRate multiplies the amount by a rate in [0,1]
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with a currency symbol
func (m Money) Format() string {
	return "£" + m.String()
}
