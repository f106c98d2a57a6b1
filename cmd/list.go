package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecobalance/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	filterFlags
	format string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list records, optionally filtered" }
func (*listCmd) Usage() string {
	return `ecb list [-d <date>] [-type <type>] [-min <amount> -max <amount>] [-format table|md]

  Lists the records of the ledger in the order they were recorded.
  Filters are combined: a record must match all of them.
  Amounts are signed, so selecting expenses by amount requires negative bounds.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.format, "format", "table", "Output format: table or md")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, err := c.filters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.format != "table" && c.format != "md" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	records := ledger.Select(filters...)

	if c.format == "md" {
		printMarkdown(renderer.RenderRecords(renderer.NewRecords("Records", records)))
		return subcommands.ExitSuccess
	}
	if len(records) == 0 {
		fmt.Println("No records found.")
		return subcommands.ExitSuccess
	}
	renderer.RecordsTable(os.Stdout, records)
	return subcommands.ExitSuccess
}
