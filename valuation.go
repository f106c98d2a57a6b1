package ecobalance

import (
	"fmt"

	"github.com/etnz/ecobalance/date"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// MonthDays is the number of days in a month for interest purposes. Rates are
// monthly, and compounded daily on a 30-day month, whatever the calendar says.
const MonthDays = 30

// digits kept after the decimal point in intermediate rate computations.
const ratePrecision = 24

var one = decimal.NewFromInt(1)

// DailyRate converts a monthly rate into the equivalent daily rate, on a
// 30-day month:
//
//	daily = ((1 + monthly/100)^(1/30) - 1) * 100
//
// Rates of -100% or less have no daily equivalent.
func DailyRate(monthly Percent) (Percent, error) {
	if monthly.value.IsZero() {
		return Percent{}, nil
	}
	growth := one.Add(monthly.value.Shift(-2))
	if !growth.IsPositive() {
		return Percent{}, fmt.Errorf("%w: monthly rate %v is not above -100%%", ErrInvalidInput, monthly)
	}
	exp := one.DivRound(decimal.NewFromInt(MonthDays), ratePrecision)
	daily, err := growth.PowWithPrecision(exp, ratePrecision)
	if err != nil {
		return Percent{}, fmt.Errorf("cannot compute daily rate of %v: %w", monthly, err)
	}
	return Percent{value: daily.Sub(one).Shift(2).Round(ratePrecision)}, nil
}

// Revalue returns a copy of the investment r with its current value computed
// as of asOf:
//
//	current = principal * (1 + daily/100)^days
//
// where days is the number of whole days since the investment date. days is
// negative for an investment dated after asOf, which yields a value below the
// principal. The result is rounded half away from zero to cents.
func Revalue(r Record, asOf date.Date) (Record, error) {
	inv, ok := r.Investment()
	if !ok {
		return r, fmt.Errorf("record %d: %w", r.id, ErrNotInvestment)
	}
	if inv.Since.IsZero() {
		return r, fmt.Errorf("record %d: %w: missing investment date", r.id, ErrInconsistentRecord)
	}
	value, err := compound(r.amount, inv.Rate, asOf.DaysSince(inv.Since))
	if err != nil {
		return r, fmt.Errorf("record %d: %w", r.id, err)
	}
	r = r.clone()
	r.inv.current = decimal.NewNullDecimal(value.value)
	return r, nil
}

// RevalueAll revalues every investment of the ledger as of asOf. Either all
// investments are revalued or, on error, none is.
func (l *Ledger) RevalueAll(asOf date.Date) error {
	revalued := make(map[int]Record)
	for i, r := range l.records {
		if r.kind != Investment {
			continue
		}
		if r.inv == nil {
			return fmt.Errorf("record %d: %w: investment without rate or investment date", r.id, ErrInconsistentRecord)
		}
		v, err := Revalue(r, asOf)
		if err != nil {
			return err
		}
		revalued[i] = v
	}
	for i, r := range revalued {
		l.records[i] = r
	}
	log.WithFields(log.Fields{"investments": len(revalued), "date": asOf}).Info("revalued investments")
	return nil
}

// compound returns principal compounded daily at the monthly rate for days,
// rounded to cents.
func compound(principal Money, monthly Percent, days int) (Money, error) {
	daily, err := DailyRate(monthly)
	if err != nil {
		return Money{}, err
	}
	factor := one.Add(daily.value.Shift(-2))
	return Money{value: principal.value.Mul(powInt(factor, days))}.Round(), nil
}

// powInt returns x^n by squaring, keeping ratePrecision digits at each step
// so that long periods do not grow the mantissa without bound. x must not be
// zero when n is negative.
func powInt(x decimal.Decimal, n int) decimal.Decimal {
	negative := n < 0
	if negative {
		n = -n
	}
	res := one
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(x).Round(ratePrecision)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x).Round(ratePrecision)
		}
	}
	if negative {
		return one.DivRound(res, ratePrecision)
	}
	return res
}
