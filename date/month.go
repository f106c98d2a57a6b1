package date

import (
	"fmt"
	"time"
)

// Month is a calendar month of a given year, the period used to aggregate
// ledger entries.
type Month struct {
	Year  int
	Month time.Month
}

// String returns the month as MM/YYYY.
func (m Month) String() string { return fmt.Sprintf("%02d/%04d", int(m.Month), m.Year) }

// Before reports whether m is strictly before n.
func (m Month) Before(n Month) bool {
	if m.Year != n.Year {
		return m.Year < n.Year
	}
	return m.Month < n.Month
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or
// after n. It is suitable for slices.SortFunc.
func (m Month) Compare(n Month) int {
	switch {
	case m.Before(n):
		return -1
	case n.Before(m):
		return 1
	default:
		return 0
	}
}
