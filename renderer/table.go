package renderer

import (
	"io"

	"github.com/etnz/ecobalance"
	"github.com/olekukonko/tablewriter"
)

// RecordsTable prints records as a boxed table, for terminals that do not
// render markdown.
func RecordsTable(w io.Writer, records []ecobalance.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Type", "Amount", "Rate", "Invested on", "Current value"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})
	for _, r := range records {
		table.Append(newRecordRow(r).columns())
	}
	table.Render()
}

// MonthlyTable prints the monthly summary as a boxed table with a total footer.
// Net results are signed.
func MonthlyTable(w io.Writer, m *Monthly) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Month", "Income", "Expense", "Net"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, row := range m.Rows {
		table.Append([]string{row.Month.String(), row.Income.String(), row.Expense.String(), row.Net.SignedString()})
	}
	table.SetFooter([]string{"Total", m.Total.Income.String(), m.Total.Expense.String(), m.Total.Net.SignedString()})
	table.Render()
}
