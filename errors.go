package ecobalance

import (
	"errors"
	"fmt"

	"github.com/etnz/ecobalance/date"
)

var (
	// ErrNotFound is returned when an id does not exist in the ledger.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput is returned when a value read at the boundary cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRange is returned when an amount range bound is not a number.
	ErrInvalidRange = errors.New("invalid amount range")
	// ErrStaleValuation is matched by *StaleValuationError.
	ErrStaleValuation = errors.New("investment has not been revalued")
	// ErrNotInvestment is returned when valuating a record that is not an investment.
	ErrNotInvestment = errors.New("record is not an investment")
	// ErrMissingInvestmentTerms is returned when an investment is created without a rate or a date.
	ErrMissingInvestmentTerms = errors.New("investment requires a monthly interest rate and an investment date")
	// ErrInconsistentRecord is returned when a record breaks the invariants of its kind.
	ErrInconsistentRecord = errors.New("inconsistent record")
)

// StaleValuationError identifies the investment that prevented an aggregation
// because its current value was never computed.
type StaleValuationError struct {
	ID   int
	Date date.Date
}

func (e *StaleValuationError) Error() string {
	return fmt.Sprintf("investment %d recorded on %v has no current value, revalue investments first", e.ID, e.Date)
}

// Is makes errors.Is(err, ErrStaleValuation) true.
func (e *StaleValuationError) Is(target error) bool { return target == ErrStaleValuation }

// LoadError reports a malformed row of a ledger file.
type LoadError struct {
	Line   int    // 1-based line number, the header being line 1.
	Column string // empty when the error is not bound to a column.
	Err    error
}

func (e *LoadError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %q: %v", e.Line, e.Column, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
