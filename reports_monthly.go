package ecobalance

import (
	"slices"

	"github.com/etnz/ecobalance/date"
)

// MonthlyTotal is the result of a calendar month.
type MonthlyTotal struct {
	Month   date.Month
	Income  Money // Income includes the gains of investments.
	Expense Money // Expense is negative or zero.
	Net     Money // Net is Income + Expense.
}

// MonthlySummary aggregates the ledger by month of the record date, in
// ascending order.
//
// Incomes and expenses contribute their amount. Investments contribute their
// gain since inception (current value minus principal) to the income of the
// month they were recorded or last edited in, not the month of the investment
// date. Every investment must have been revalued: otherwise a
// *StaleValuationError naming the first such record is returned.
//
// Totals are exact, rounding is left to display.
func MonthlySummary(l *Ledger) ([]MonthlyTotal, error) {
	totals := make(map[date.Month]*MonthlyTotal)
	for _, r := range l.records {
		m := r.date.Period()
		total, ok := totals[m]
		if !ok {
			total = &MonthlyTotal{Month: m}
			totals[m] = total
		}
		switch r.kind {
		case Income:
			total.Income = total.Income.Add(r.amount)
		case Expense:
			total.Expense = total.Expense.Add(r.amount)
		case Investment:
			inv, _ := r.Investment()
			current, valued := inv.CurrentValue()
			if !valued {
				return nil, &StaleValuationError{ID: r.id, Date: r.date}
			}
			total.Income = total.Income.Add(current.Sub(r.amount))
		}
	}

	res := make([]MonthlyTotal, 0, len(totals))
	for _, total := range totals {
		total.Net = total.Income.Add(total.Expense)
		res = append(res, *total)
	}
	slices.SortFunc(res, func(a, b MonthlyTotal) int { return a.Month.Compare(b.Month) })
	return res, nil
}
