package renderer

import (
	"strconv"

	"github.com/etnz/ecobalance"
)

// Records is the data of a record listing.
type Records struct {
	Title string
	Rows  []RecordRow
}

// RecordRow is a record with every column already formatted. Investment
// columns are empty for other kinds.
type RecordRow struct {
	ID      int
	Date    string
	Type    string
	Amount  string
	Rate    string
	Since   string
	Current string
}

// NewRecords builds a listing titled title.
func NewRecords(title string, records []ecobalance.Record) *Records {
	res := &Records{Title: title, Rows: make([]RecordRow, 0, len(records))}
	for _, r := range records {
		res.Rows = append(res.Rows, newRecordRow(r))
	}
	return res
}

func newRecordRow(r ecobalance.Record) RecordRow {
	row := RecordRow{
		ID:     r.ID(),
		Date:   r.Date().String(),
		Type:   r.Kind().String(),
		Amount: r.Amount().String(),
	}
	if inv, ok := r.Investment(); ok {
		row.Rate = inv.Rate.String()
		row.Since = inv.Since.String()
		row.Current = "-"
		if v, ok := inv.CurrentValue(); ok {
			row.Current = v.String()
		}
	}
	return row
}

// columns returns the row cells in table order.
func (r RecordRow) columns() []string {
	return []string{strconv.Itoa(r.ID), r.Date, r.Type, r.Amount, r.Rate, r.Since, r.Current}
}
