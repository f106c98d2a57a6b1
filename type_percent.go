package ecobalance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent: P(5) is 5%.
type Percent struct {
	value decimal.Decimal
}

// P returns a Percent from any numeric value.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses a percentage written as a plain number ("5" or "0.5"),
// a trailing '%' is accepted.
func ParsePercent(s string) (Percent, error) {
	str := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Percent{}, fmt.Errorf("%w: rate %q is not a number", ErrInvalidInput, s)
	}
	return Percent{value: d}, nil
}

// Equal compares with some precision, rates are often the result of
// irrational computations.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	return p.value.Sub(q.value).Abs().LessThan(decimal.NewFromFloat(precision))
}

// Text returns the exact rate as plain decimal text, as persisted.
func (p Percent) Text() string { return p.value.String() }

func (p Percent) String() string { return p.value.String() + "%" }

// MarshalJSON writes the rate as a JSON number.
func (p Percent) MarshalJSON() ([]byte, error) { return []byte(p.value.String()), nil }
