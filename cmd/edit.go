package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecobalance"
	"github.com/google/subcommands"
)

type editCmd struct {
	id     int
	kind   string
	amount string
	rate   string
	since  string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the type, amount or investment terms of a record" }
func (*editCmd) Usage() string {
	return `ecb edit -id <id> [-type <type>] [-amount <amount>] [-rate <rate>] [-since <date>]

  Edits a record and saves the ledger file. Omitted flags keep the current
  values. The record is dated today.

  Turning a record into an investment requires -rate. Turning an investment
  into another type drops its rate, investment date and current value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the record to edit")
	f.StringVar(&c.kind, "type", "", "New record type: receita (r), despesa (d) or investimento (i)")
	f.StringVar(&c.amount, "amount", "", "New amount, without sign")
	f.StringVar(&c.rate, "rate", "", "New monthly interest rate in percent")
	f.StringVar(&c.since, "since", "", "New investment date (DD/MM/YYYY)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	current, err := ledger.Get(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	kind, amount, terms, err := editValues(current, c.kind, c.amount, c.rate, c.since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := ledger.Update(c.id, kind, amount, terms); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Record %d updated.\n", c.id)
	return subcommands.ExitSuccess
}

// editValues merges the user input with the current record: blank values keep
// the current ones. It returns the arguments of ecobalance.Ledger.Update.
func editValues(current ecobalance.Record, kindText, amountText, rateText, sinceText string) (ecobalance.Kind, ecobalance.Money, *ecobalance.InvestmentTerms, error) {
	kind := current.Kind()
	if kindText != "" {
		k, err := ecobalance.ParseKind(kindText)
		if err != nil {
			return 0, ecobalance.Money{}, nil, err
		}
		kind = k
	}

	amount := current.Amount()
	if amountText != "" {
		a, err := ecobalance.ParseMoney(amountText)
		if err != nil {
			return 0, ecobalance.Money{}, nil, err
		}
		amount = a
	}

	if kind != ecobalance.Investment || (rateText == "" && sinceText == "") {
		return kind, amount, nil, nil
	}

	var terms ecobalance.InvestmentTerms
	if inv, ok := current.Investment(); ok {
		terms = inv.InvestmentTerms
	} else if rateText == "" {
		return 0, ecobalance.Money{}, nil, ecobalance.ErrMissingInvestmentTerms
	}
	if rateText != "" {
		rate, err := ecobalance.ParsePercent(rateText)
		if err != nil {
			return 0, ecobalance.Money{}, nil, err
		}
		terms.Rate = rate
	}
	since, err := parseDate("since", sinceText, terms.Since)
	if err != nil {
		return 0, ecobalance.Money{}, nil, err
	}
	terms.Since = since
	return kind, amount, &terms, nil
}

