package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the ledger through an interactive menu" }
func (*menuCmd) Usage() string {
	return `ecb menu

  Opens the interactive menu. Changes are kept in memory until saved with
  'S': quitting without saving loses them.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Ledger %s loaded, %d records.\n", LedgerPath(), ledger.Len())

	if err := newShell(os.Stdin, os.Stdout, ledger, LedgerPath()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
