package ecobalance

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ecobalance/date"
)

// Filter selects records. See [Ledger.Records].
type Filter func(Record) bool

// AcceptAll is a filter that accepts every record.
func AcceptAll(Record) bool { return true }

func acceptAll(r Record, filters []Filter) bool {
	for _, accept := range filters {
		if !accept(r) {
			return false
		}
	}
	return true
}

// ByDate selects records dated on.
func ByDate(on date.Date) Filter {
	return func(r Record) bool { return r.date == on }
}

// KindFilter selects records of kind k.
func KindFilter(k Kind) Filter {
	return func(r Record) bool { return r.kind == k }
}

// ByKind selects records whose kind matches name, ignoring case. The
// canonical names ("Despesa"), the english ones ("expense") and the first
// letter of the canonical names ("d") are accepted. An unknown name is an
// ErrInvalidInput error rather than a filter selecting nothing, so that a
// typo is reported.
func ByKind(name string) (Filter, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return KindFilter(k), nil
}

// AmountBetween selects records whose signed amount is in [min, max].
func AmountBetween(min, max Money) Filter {
	return func(r Record) bool {
		return min.LessThanOrEqual(r.amount) && r.amount.LessThanOrEqual(max)
	}
}

// ByAmountRange parses the bounds and returns an AmountBetween filter.
// Amounts are signed: selecting expenses requires negative bounds.
func ByAmountRange(min, max string) (Filter, error) {
	lo, err := ParseMoney(min)
	if err != nil {
		return nil, fmt.Errorf("%w: minimum %q is not a number", ErrInvalidRange, min)
	}
	hi, err := ParseMoney(max)
	if err != nil {
		return nil, fmt.Errorf("%w: maximum %q is not a number", ErrInvalidRange, max)
	}
	return AmountBetween(lo, hi), nil
}

// Query evaluates a JSONPath expression against the JSON array of all
// records (see [Record.MarshalJSON]) and returns the result as decoded JSON
// values, e.g.
//
//	$[?(@.type=="Despesa")].amount
func (l *Ledger) Query(expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}
	raw, err := json.Marshal(l.Select())
	if err != nil {
		return nil, fmt.Errorf("cannot marshal ledger: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cannot unmarshal ledger: %w", err)
	}
	res, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %w", ErrInvalidInput, expr, err)
	}
	return res, nil
}
