package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"15/01/2025", New(2025, time.January, 15), false},
		{"1/7/2025", New(2025, time.July, 1), false},
		{" 14/08/2024 ", New(2024, time.August, 14), false},
		{"2025-01-15", Date{}, true},
		{"31/02/2025", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got, want := New(2024, time.August, 4).String(), "04/08/2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero Date String() = %q, want empty", got)
	}
}

func TestDaysSince(t *testing.T) {
	tests := []struct {
		name string
		d, x Date
		want int
	}{
		{"same day", New(2025, 3, 1), New(2025, 3, 1), 0},
		{"thirty days", New(2025, 3, 31), New(2025, 3, 1), 30},
		{"across leap day", New(2024, 3, 1), New(2024, 2, 28), 2},
		{"future start", New(2025, 3, 1), New(2025, 3, 11), -10},
		{"over three centuries", New(2025, 1, 1), New(1700, 1, 1), 118704},
		{"over three centuries backwards", New(1700, 1, 1), New(2025, 1, 1), -118704},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.DaysSince(tt.x); got != tt.want {
				t.Errorf("%v.DaysSince(%v) = %d, want %d", tt.d, tt.x, got, tt.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, time.March, 9)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"09/03/2025"` {
		t.Errorf("Marshal() = %s", b)
	}
}
