package cmd

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/ecobalance"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ecb fmt [-o <file>]

  Validates and formats the ledger file. This command reads all records,
  validates them, sorts them by id, and writes them back with normalized
  dates and amounts. By default the ledger file is rewritten in place.

Usage Examples:
# Rewrites the ledger file.
$ ecb fmt

# Writes the formatted ledger to another file.
$ ecb fmt -o clean.csv
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file, defaults to the ledger file")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	records := ledger.Select()
	slices.SortFunc(records, func(a, b ecobalance.Record) int { return cmp.Compare(a.ID(), b.ID()) })

	output := p.outputFile
	if output == "" {
		output = LedgerPath()
	}
	if err := ecobalance.ExportRecords(output, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d records into %s.\n", len(records), output)
	return subcommands.ExitSuccess
}
