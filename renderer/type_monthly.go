package renderer

import (
	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/date"
)

// Monthly is the data of the monthly summary report.
type Monthly struct {
	From, To date.Month // first and last month with records.
	Rows     []MonthlyRow
	Total    MonthlyRow // Total sums all rows, its Month is zero.
}

// MonthlyRow is the result of one month.
type MonthlyRow struct {
	Month   date.Month
	Income  ecobalance.Money
	Expense ecobalance.Money
	Net     ecobalance.Money
}

// NewMonthly builds the report from the totals returned by ecobalance.MonthlySummary.
func NewMonthly(totals []ecobalance.MonthlyTotal) *Monthly {
	m := &Monthly{Rows: make([]MonthlyRow, 0, len(totals))}
	for _, t := range totals {
		m.Rows = append(m.Rows, MonthlyRow{Month: t.Month, Income: t.Income, Expense: t.Expense, Net: t.Net})
		m.Total.Income = m.Total.Income.Add(t.Income)
		m.Total.Expense = m.Total.Expense.Add(t.Expense)
		m.Total.Net = m.Total.Net.Add(t.Net)
	}
	if len(totals) > 0 {
		m.From = totals[0].Month
		m.To = totals[len(totals)-1].Month
	}
	return m
}
