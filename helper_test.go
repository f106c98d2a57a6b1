package ecobalance

import (
	"testing"

	"github.com/etnz/ecobalance/date"
)

// BRL is a helper for test to create money from const.
func BRL(v float64) Money { return M(v) }

// fixedClock returns a ledger option that dates edits on day.
func fixedClock(day date.Date) Option {
	return WithClock(func() date.Date { return day })
}

// mustCreate creates a record or fails the test.
func mustCreate(t *testing.T, l *Ledger, kind Kind, principal float64, on string, terms *InvestmentTerms) int {
	t.Helper()
	id, err := l.Create(kind, BRL(principal), date.MustParse(on), terms)
	if err != nil {
		t.Fatalf("Create(%v, %v, %s) failed: %v", kind, principal, on, err)
	}
	return id
}

// invest is a helper to declare investment terms.
func invest(rate float64, since string) *InvestmentTerms {
	return &InvestmentTerms{Rate: P(rate), Since: date.MustParse(since)}
}

// snapshot returns the persisted form of all records, handy to compare ledgers.
func snapshot(l *Ledger) []csvRecord {
	var res []csvRecord
	for _, r := range l.Records() {
		res = append(res, newCSVRecord(r))
	}
	return res
}
