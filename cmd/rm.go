package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecobalance"
	"github.com/google/subcommands"
)

type rmCmd struct {
	id   int
	date string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record" }
func (*rmCmd) Usage() string {
	return `ecb rm -id <id> | -d <date>

  Deletes a record and saves the ledger file.

  With -d, the record dated on that day is deleted. If there are several,
  they are listed and nothing is deleted: use -id.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the record to delete")
	f.StringVar(&c.date, "d", "", "Date of the record to delete (DD/MM/YYYY)")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.id <= 0) == (c.date == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -id or -d is required")
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	id := c.id
	if c.date != "" {
		on, err := parseDate("d", c.date, today())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		candidates := ledger.Select(ecobalance.ByDate(on))
		switch len(candidates) {
		case 0:
			fmt.Fprintf(os.Stderr, "Error: no record dated %v\n", on)
			return subcommands.ExitFailure
		case 1:
			id = candidates[0].ID()
		default:
			fmt.Fprintf(os.Stderr, "Error: %d records dated %v, use -id to choose:\n", len(candidates), on)
			for _, r := range candidates {
				fmt.Fprintf(os.Stderr, "  %v\n", r)
			}
			return subcommands.ExitUsageError
		}
	}

	if err := ledger.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Record %d deleted.\n", id)
	return subcommands.ExitSuccess
}
