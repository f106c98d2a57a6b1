package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/date"
)

// filterFlags are the record selection flags shared by list and export.
type filterFlags struct {
	date string
	kind string
	min  string
	max  string
}

func (p *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Only records dated on this day (DD/MM/YYYY)")
	f.StringVar(&p.kind, "type", "", "Only records of this type (receita, despesa, investimento)")
	f.StringVar(&p.min, "min", "", "Only records with an amount greater or equal (requires -max)")
	f.StringVar(&p.max, "max", "", "Only records with an amount lower or equal (requires -min)")
}

// filters returns the filters selected by the flags, none selects every record.
func (p *filterFlags) filters() ([]ecobalance.Filter, error) {
	var filters []ecobalance.Filter
	if p.date != "" {
		on, err := parseDate("d", p.date, date.Date{})
		if err != nil {
			return nil, err
		}
		filters = append(filters, ecobalance.ByDate(on))
	}
	if p.kind != "" {
		f, err := ecobalance.ByKind(p.kind)
		if err != nil {
			return nil, fmt.Errorf("invalid -type: %w", err)
		}
		filters = append(filters, f)
	}
	if p.min != "" || p.max != "" {
		if p.min == "" || p.max == "" {
			return nil, errors.New("-min and -max must be used together")
		}
		f, err := ecobalance.ByAmountRange(p.min, p.max)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}
