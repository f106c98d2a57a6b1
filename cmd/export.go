package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecobalance"
	"github.com/google/subcommands"
)

// DefaultReportFile is the default output of the export command.
const DefaultReportFile = "meu_relatorio.csv"

type exportCmd struct {
	filterFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export records to a CSV report" }
func (*exportCmd) Usage() string {
	return `ecb export [-o <file>] [-d <date>] [-type <type>] [-min <amount> -max <amount>]

  Writes the selected records (all by default) to a CSV file with the same
  columns as the ledger file. Columns that do not apply to a record are left
  empty. Nothing is written if no record is selected.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.output, "o", DefaultReportFile, "Output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, err := c.filters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	n, err := export(ledger, c.output, filters...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no records to export.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Exported %d records to %s.\n", n, c.output)
	return subcommands.ExitSuccess
}

// export writes the selected records to path and returns how many were
// written. Nothing is written when no record is selected.
func export(l *ecobalance.Ledger, path string, filters ...ecobalance.Filter) (int, error) {
	records := l.Select(filters...)
	if len(records) == 0 {
		return 0, nil
	}
	return len(records), ecobalance.ExportRecords(path, records)
}
