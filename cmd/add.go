package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	kind   string
	amount string
	date   string
	rate   string
	since  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income, an expense or an investment" }
func (*addCmd) Usage() string {
	return `ecb add -type <type> -amount <amount> [-d <date>] [-rate <rate> [-since <date>]]

  Records a new entry and saves the ledger file.

  The amount is given without sign: expenses are stored negative.
  Investments require a monthly interest rate, and are invested on -since
  (defaults to today).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Record type: receita (r), despesa (d) or investimento (i)")
	f.StringVar(&c.amount, "amount", "", "Amount, e.g. 18.25")
	f.StringVar(&c.date, "d", "", "Record date (DD/MM/YYYY), defaults to today")
	f.StringVar(&c.rate, "rate", "", "Monthly interest rate in percent, investments only")
	f.StringVar(&c.since, "since", "", "Investment date (DD/MM/YYYY), defaults to today")
}

// parse validates the flags into the arguments of ecobalance.Ledger.Create.
func (c *addCmd) parse() (kind ecobalance.Kind, amount ecobalance.Money, on date.Date, terms *ecobalance.InvestmentTerms, err error) {
	if c.kind == "" || c.amount == "" {
		err = fmt.Errorf("-type and -amount are required")
		return
	}
	if kind, err = ecobalance.ParseKind(c.kind); err != nil {
		return
	}
	if amount, err = ecobalance.ParseMoney(c.amount); err != nil {
		return
	}
	if on, err = parseDate("d", c.date, date.Date{}); err != nil {
		return
	}
	if kind == ecobalance.Investment && c.rate != "" {
		terms = &ecobalance.InvestmentTerms{}
		if terms.Rate, err = ecobalance.ParsePercent(c.rate); err != nil {
			return
		}
		if terms.Since, err = parseDate("since", c.since, date.Date{}); err != nil {
			return
		}
	}
	return
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, amount, on, terms, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := ledger.Create(kind, amount, on, terms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Record %d created.\n", id)
	return subcommands.ExitSuccess
}
