package date

import (
	"slices"
	"testing"
	"time"
)

func TestMonth(t *testing.T) {
	m := New(2024, time.February, 14).Period()
	if m != (Month{2024, time.February}) {
		t.Fatalf("Period() = %v", m)
	}
	if got, want := m.String(), "02/2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := New(2024, time.March, 1).Period(); got == m {
		t.Errorf("Period() of 01/03/2024 = %v, want another month", got)
	}
}

func TestMonth_Compare(t *testing.T) {
	months := []Month{
		{2025, time.January},
		{2024, time.December},
		{2024, time.March},
		{2025, time.January},
	}
	slices.SortFunc(months, Month.Compare)
	want := []Month{
		{2024, time.March},
		{2024, time.December},
		{2025, time.January},
		{2025, time.January},
	}
	if !slices.Equal(months, want) {
		t.Errorf("sorted = %v, want %v", months, want)
	}
}
