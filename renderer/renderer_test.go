package renderer

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/date"
	"github.com/google/go-cmp/cmp"
)

var update = flag.Bool("update", false, "if true, update golden .md files with the received output")

func TestUpdateIsOff(t *testing.T) {
	if *update {
		t.Fatal("-update is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// checkGolden compares got with the content of testdata/name.
func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *update {
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("failed to update golden file %q: %v", path, err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %q: %v", path, err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// testLedger returns a ledger with records in two months.
func testLedger(t *testing.T) *ecobalance.Ledger {
	t.Helper()
	l := ecobalance.NewLedger()
	add := func(kind ecobalance.Kind, amount float64, on string, terms *ecobalance.InvestmentTerms) {
		if _, err := l.Create(kind, ecobalance.M(amount), date.MustParse(on), terms); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}
	add(ecobalance.Expense, 5, "31/12/2024", nil)
	add(ecobalance.Income, 100, "05/03/2025", nil)
	add(ecobalance.Investment, 1000, "06/03/2025", &ecobalance.InvestmentTerms{Rate: ecobalance.P(1), Since: date.MustParse("01/03/2025")})
	return l
}

func TestRenderMonthly(t *testing.T) {
	totals := []ecobalance.MonthlyTotal{
		{Month: date.Month{Year: 2024, Month: 12}, Expense: ecobalance.M(-5), Net: ecobalance.M(-5)},
		{Month: date.Month{Year: 2025, Month: 3}, Income: ecobalance.M(105), Expense: ecobalance.M(-40), Net: ecobalance.M(65)},
	}
	checkGolden(t, "monthly.md", RenderMonthly(NewMonthly(totals)))
	checkGolden(t, "monthly_empty.md", RenderMonthly(NewMonthly(nil)))
}

func TestRenderMonthly_FromLedger(t *testing.T) {
	l := testLedger(t)
	if err := l.RevalueAll(date.MustParse("31/03/2025")); err != nil {
		t.Fatalf("RevalueAll() failed: %v", err)
	}
	totals, err := ecobalance.MonthlySummary(l)
	if err != nil {
		t.Fatalf("MonthlySummary() failed: %v", err)
	}
	got := RenderMonthly(NewMonthly(totals))
	// the investment gained 10 in march.
	if want := "| 03/2025 | R$ 110.00 | R$ 0.00 | +R$ 110.00 |"; !strings.Contains(got, want) {
		t.Errorf("RenderMonthly() = %s\nwant a line %q", got, want)
	}
}

func TestRenderRecords(t *testing.T) {
	checkGolden(t, "records.md", RenderRecords(NewRecords("Records", testLedger(t).Select())))
	checkGolden(t, "records_empty.md", RenderRecords(NewRecords("Records", nil)))
}

func TestRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	RecordsTable(&buf, testLedger(t).Select())
	got := buf.String()
	for _, want := range []string{"Invested on", "Investimento", "-R$ 5.00", "R$ 1000.00", "01/03/2025"} {
		if !strings.Contains(got, want) {
			t.Errorf("RecordsTable() = \n%s\nwant it to contain %q", got, want)
		}
	}
	// header, 3 rows and 3 borders.
	if lines := strings.Count(got, "\n"); lines != 7 {
		t.Errorf("RecordsTable() has %d lines, want 7:\n%s", lines, got)
	}
}

func TestMonthlyTable(t *testing.T) {
	m := NewMonthly([]ecobalance.MonthlyTotal{
		{Month: date.Month{Year: 2025, Month: 3}, Income: ecobalance.M(100), Expense: ecobalance.M(-40), Net: ecobalance.M(60)},
		{Month: date.Month{Year: 2025, Month: 4}, Income: ecobalance.M(1), Net: ecobalance.M(1)},
	})
	var buf bytes.Buffer
	MonthlyTable(&buf, m)
	got := buf.String()
	for _, want := range []string{"03/2025", "04/2025", "Total", "R$ 101.00", "+R$ 61.00", "+R$ 60.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("MonthlyTable() = \n%s\nwant it to contain %q", got, want)
		}
	}
}
