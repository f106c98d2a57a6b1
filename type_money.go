package ecobalance

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// display formats amounts the way the ledger prints them: "R$ 1234.56",
// without thousands separator.
var display = money.NewFormatter(2, ".", "", "R$ ", "$1")

// Money represents a monetary value in the ledger currency.
//
// Values are kept exact; rounding to cents only happens when they are
// displayed, or when a computation explicitly asks for it (see [Revalue]).
type Money struct {
	value decimal.Decimal // as major unit value
}

// M returns a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported numeric type %T", value))
	}
}

// ParseMoney parses a decimal amount using '.' as the decimal separator.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, s)
	}
	return Money{value: d}, nil
}

// String returns the amount rounded to cents, with the currency symbol.
func (m Money) String() string {
	return display.Format(m.value.Round(2).Shift(2).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Text returns the exact amount as plain decimal text, as persisted.
func (m Money) Text() string { return m.value.String() }

// Decimal returns the underlying exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Round returns m rounded half away from zero to cents.
func (m Money) Round() Money { return Money{value: m.value.Round(2)} }

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                   { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }

// MarshalJSON writes the exact amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) { return []byte(m.value.String()), nil }
