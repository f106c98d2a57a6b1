package ecobalance

import (
	"fmt"
	"iter"

	"github.com/etnz/ecobalance/date"
	log "github.com/sirupsen/logrus"
)

// Ledger is the in-memory store of records.
//
// It assigns identifiers, enforces the invariants of each kind, and keeps
// records in insertion order. The zero value is an empty ledger using the
// system clock. A Ledger is not safe for concurrent use.
type Ledger struct {
	records []Record    // in insertion order
	index   map[int]int // index records position by id
	today   func() date.Date // nil means date.Today
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the function used to date edits and default creation dates.
func WithClock(today func() date.Date) Option {
	return func(l *Ledger) { l.today = today }
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		records: make([]Record, 0),
		index:   make(map[int]int),
		today:   date.Today,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// now returns the date of today according to the ledger clock.
func (l *Ledger) now() date.Date {
	if l.today == nil {
		return date.Today()
	}
	return l.today()
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// NextID returns the id the next created record will get: the highest id in
// use plus one, or 1 for an empty ledger.
func (l *Ledger) NextID() int {
	last := 0
	for id := range l.index {
		if id > last {
			last = id
		}
	}
	return last + 1
}

// Create inserts a new record and returns its id.
//
// principal is a magnitude, its sign is ignored: expenses are stored negative,
// other kinds positive. terms are required for investments, and ignored
// otherwise. A zero date defaults to today, so does a zero investment date.
func (l *Ledger) Create(kind Kind, principal Money, on date.Date, terms *InvestmentTerms) (int, error) {
	if on.IsZero() {
		on = l.now()
	}
	if kind != Investment {
		terms = nil
	} else {
		if terms == nil {
			return 0, ErrMissingInvestmentTerms
		}
		t := *terms
		if t.Since.IsZero() {
			t.Since = l.now()
		}
		terms = &t
	}

	id := l.NextID()
	r, err := NewRecord(id, on, kind, kind.signed(principal), terms, nil)
	if err != nil {
		return 0, err
	}
	l.insert(r)
	log.WithField("id", id).Debugf("created %v", r)
	return id, nil
}

// Get returns a copy of the record with this id.
func (l *Ledger) Get(id int) (Record, error) {
	i, ok := l.index[id]
	if !ok {
		return Record{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return l.records[i].clone(), nil
}

// Update changes the kind and amount of a record, and dates it today.
//
// The sign rule of the new kind is applied to principal. Changing to a kind
// other than Investment strips the investment fields, including the current
// value. When the new kind is Investment, the current value of an existing
// investment is kept; nil terms keep the current terms of an existing
// investment but are required when converting another kind.
func (l *Ledger) Update(id int, kind Kind, principal Money, terms *InvestmentTerms) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	old := l.records[i]

	var current *Money
	if kind == Investment {
		prev, wasInvestment := old.Investment()
		switch {
		case terms == nil && !wasInvestment:
			return fmt.Errorf("id %d: %w", id, ErrMissingInvestmentTerms)
		case terms == nil:
			terms = &prev.InvestmentTerms
		default:
			t := *terms
			if t.Since.IsZero() {
				t.Since = prev.Since
			}
			if t.Since.IsZero() {
				t.Since = l.now()
			}
			terms = &t
		}
		if v, ok := prev.CurrentValue(); wasInvestment && ok {
			current = &v
		}
	} else {
		terms = nil
	}

	r, err := NewRecord(id, l.now(), kind, kind.signed(principal), terms, current)
	if err != nil {
		return err
	}
	l.records[i] = r
	log.WithField("id", id).Debugf("updated %v into %v", old, r)
	return nil
}

// Delete removes a record. Its id is only reused if it was the highest one.
func (l *Ledger) Delete(id int) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.records); j++ {
		l.index[l.records[j].id] = j
	}
	log.WithField("id", id).Debug("deleted record")
	return nil
}

// Records returns an iterator over the records accepted by all filters, in
// insertion order. Without filters every record is yielded.
func (l *Ledger) Records(filters ...Filter) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for _, r := range l.records {
			if !acceptAll(r, filters) {
				continue
			}
			if !yield(r.id, r.clone()) {
				return
			}
		}
	}
}

// Select returns the records accepted by all filters, in insertion order.
func (l *Ledger) Select(filters ...Filter) []Record {
	res := make([]Record, 0, len(l.records))
	for _, r := range l.Records(filters...) {
		res = append(res, r)
	}
	return res
}

// insert appends a record, the id must be free.
func (l *Ledger) insert(r Record) {
	if l.index == nil {
		l.index = make(map[int]int)
	}
	l.index[r.id] = len(l.records)
	l.records = append(l.records, r)
}

// add inserts an already built record, as read from a file.
func (l *Ledger) add(r Record) error {
	if _, exists := l.index[r.id]; exists {
		return fmt.Errorf("%w: duplicate id %d", ErrInconsistentRecord, r.id)
	}
	l.insert(r.clone())
	return nil
}
