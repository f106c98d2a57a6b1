package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct {
	format string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display income, expense and net result per month" }
func (*monthlyCmd) Usage() string {
	return `ecb monthly [-format md|table]

  Displays the total income, expense and net result of each month.

  Investment gains (current value minus principal) count as income of the
  month the investment was recorded in. Investments must be revalued first,
  see 'ecb revalue'.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "md", "Output format: md or table")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.format != "table" && c.format != "md" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	totals, err := ecobalance.MonthlySummary(ledger)
	if errors.Is(err, ecobalance.ErrStaleValuation) {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'ecb revalue' to update investments.\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := renderer.NewMonthly(totals)
	if c.format == "table" {
		renderer.MonthlyTable(os.Stdout, report)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderMonthly(report))
	return subcommands.ExitSuccess
}
