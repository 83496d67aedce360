package kuku

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency the simulator trades in. Balances,
// prices and proceeds are all expressed in it.
const Currency = "USD"

// Money represents a monetary value in the simulator currency.
//
// It keeps the exact decimal value internally; rounding to the currency
// fraction only happens on Round and String.
type Money struct {
	value decimal.Decimal
}

// M is a convenient factory for Money.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the full currency definition for formatting.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, Currency).Currency()
}

// String formats the value with the currency symbol, exactly two decimal
// places, and thousands separators (e.g. "$1,234.56").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Round returns the value rounded to the currency fraction (2 decimal
// places for USD).
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction))}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }

// MarshalJSON implements json.Marshaler; Money persists as a plain
// decimal number.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
