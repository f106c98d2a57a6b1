package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type revalueCmd struct {
	date string
}

func (*revalueCmd) Name() string     { return "revalue" }
func (*revalueCmd) Synopsis() string { return "compute the current value of every investment" }
func (*revalueCmd) Usage() string {
	return `ecb revalue [-d <date>]

  Computes the current value of every investment as of a date (defaults to
  today) and saves the ledger file. Interest compounds daily, the daily rate
  being the monthly rate spread over 30 days.
`
}

func (c *revalueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date (DD/MM/YYYY), defaults to today")
}

func (c *revalueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseDate("d", c.date, today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.RevalueAll(asOf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Investments revalued as of %v.\n", asOf)
	return subcommands.ExitSuccess
}
