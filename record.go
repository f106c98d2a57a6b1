package ecobalance

import (
	"fmt"

	"github.com/etnz/ecobalance/date"
	"github.com/shopspring/decimal"
)

// InvestmentTerms are the user provided fields of an investment.
type InvestmentTerms struct {
	Rate  Percent   // Rate is the monthly interest rate.
	Since date.Date // Since is the date the principal was invested.
}

// Holding is the payload only carried by records of kind Investment.
type Holding struct {
	InvestmentTerms
	current decimal.NullDecimal // null until the investment has been revalued.
}

// CurrentValue returns the value computed by the last revaluation, and false
// if the investment was never revalued.
func (i Holding) CurrentValue() (Money, bool) {
	if !i.current.Valid {
		return Money{}, false
	}
	return Money{value: i.current.Decimal}, true
}

// Record is a single ledger entry.
//
// Records are values: those returned by a [Ledger] are copies, and changing
// the ledger is only possible through its methods.
type Record struct {
	id     int
	date   date.Date
	kind   Kind
	amount Money
	inv    *Holding // non nil iff kind == Investment
}

// NewRecord builds a record from persisted fields and checks the invariants of
// its kind: the sign of amount, and the presence of the investment payload.
// current may be nil for an investment that was never revalued.
func NewRecord(id int, on date.Date, kind Kind, amount Money, terms *InvestmentTerms, current *Money) (Record, error) {
	r := Record{id: id, date: on, kind: kind, amount: amount}
	if id <= 0 {
		return r, fmt.Errorf("%w: id %d is not positive", ErrInconsistentRecord, id)
	}
	switch kind {
	case Income, Investment:
		if amount.IsNegative() {
			return r, fmt.Errorf("%w: %v amount %v is negative", ErrInconsistentRecord, kind, amount.Text())
		}
	case Expense:
		if amount.IsPositive() {
			return r, fmt.Errorf("%w: %v amount %v is positive", ErrInconsistentRecord, kind, amount.Text())
		}
	default:
		return r, fmt.Errorf("%w: unknown kind %d", ErrInconsistentRecord, kind)
	}
	if kind != Investment {
		if terms != nil || current != nil {
			return r, fmt.Errorf("%w: %v record %d carries investment fields", ErrInconsistentRecord, kind, id)
		}
		return r, nil
	}
	if terms == nil || terms.Since.IsZero() {
		return r, fmt.Errorf("%w: record %d: %w", ErrInconsistentRecord, id, ErrMissingInvestmentTerms)
	}
	r.inv = &Holding{InvestmentTerms: *terms}
	if current != nil {
		r.inv.current = decimal.NewNullDecimal(current.value)
	}
	return r, nil
}

func (r Record) ID() int         { return r.id }
func (r Record) Date() date.Date { return r.date }
func (r Record) Kind() Kind      { return r.kind }

// Amount returns the signed amount: negative for expenses, the principal for
// investments.
func (r Record) Amount() Money { return r.amount }

// Investment returns the investment payload, and false for other kinds.
func (r Record) Investment() (Holding, bool) {
	if r.inv == nil {
		return Holding{}, false
	}
	return *r.inv, true
}

// clone returns a deep copy of r, so that the payload is not shared.
func (r Record) clone() Record {
	if r.inv != nil {
		inv := *r.inv
		r.inv = &inv
	}
	return r
}

func (r Record) String() string {
	s := fmt.Sprintf("#%d %v %v %v", r.id, r.date, r.kind, r.amount)
	if inv, ok := r.Investment(); ok {
		s += fmt.Sprintf(" at %v/month since %v", inv.Rate, inv.Since)
		if v, ok := inv.CurrentValue(); ok {
			s += fmt.Sprintf(" now %v", v)
		}
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface for Record. Property
// names follow the ledger file columns.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.id)
	w.Append("date", r.date)
	w.Append("type", r.kind.String())
	w.Append("amount", r.amount)
	if inv, ok := r.Investment(); ok {
		w.Append("monthly_interest_rate", inv.Rate)
		w.Append("investment_date", inv.Since)
		if v, ok := inv.CurrentValue(); ok {
			w.Append("current_value", v)
		}
	}
	return w.MarshalJSON()
}
