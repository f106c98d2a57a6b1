package ecobalance

import (
	"fmt"
	"strings"
)

// Kind is the kind of a ledger record.
type Kind int

const (
	// Income is money received, stored as a positive amount.
	Income Kind = iota + 1
	// Expense is money spent, stored as a negative amount.
	Expense
	// Investment is a principal placed at a monthly interest rate, stored as a positive amount.
	Investment
)

// Kinds lists all kinds in display order.
var Kinds = []Kind{Income, Expense, Investment}

// String returns the canonical name, the one persisted in the ledger file.
func (k Kind) String() string {
	switch k {
	case Income:
		return "Receita"
	case Expense:
		return "Despesa"
	case Investment:
		return "Investimento"
	default:
		return "unknown"
	}
}

// Name returns the english name of the kind.
func (k Kind) Name() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	case Investment:
		return "investment"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind from its canonical name, its english name or its
// one letter shortcut (r, d, i), ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "receita", "income", "r":
		return Income, nil
	case "despesa", "expense", "d":
		return Expense, nil
	case "investimento", "investment", "i":
		return Investment, nil
	default:
		return 0, fmt.Errorf("%w: unknown record type %q", ErrInvalidInput, s)
	}
}

// signed applies the sign rule of the kind to a magnitude.
func (k Kind) signed(principal Money) Money {
	if k == Expense {
		return principal.Abs().Neg()
	}
	return principal.Abs()
}
