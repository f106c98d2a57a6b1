package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/date"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "id,date,type,amount,monthly_interest_rate,investment_date,current_value\n"

// useLedger points the application to a temporary ledger file with content,
// and fixes today's date. An empty content means no file.
func useLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registros.csv")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write ledger: %v", err)
		}
	}

	oldLedgerFile, oldToday := *ledgerFile, today
	*ledgerFile = path
	today = func() date.Date { return date.MustParse("31/03/2025") }
	t.Cleanup(func() {
		*ledgerFile = oldLedgerFile
		today = oldToday
	})
	return path
}

// run executes the command with args.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %q: %v", path, err)
	}
	return string(content)
}

const sample = header +
	"1,05/03/2025,Receita,100,,,\n" +
	"2,05/03/2025,Despesa,-40,,,\n" +
	"3,06/03/2025,Investimento,1000,1,01/03/2025,\n"

func TestAddCmd(t *testing.T) {
	path := useLedger(t, "")

	assert.Equal(t, subcommands.ExitSuccess, run(t, &addCmd{}, "-type", "receita", "-amount", "100", "-d", "05/03/2025"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, &addCmd{}, "-type", "d", "-amount", "40", "-d", "05/03/2025"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, &addCmd{}, "-type", "investment", "-amount", "1000", "-d", "06/03/2025", "-rate", "1", "-since", "01/03/2025"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, &addCmd{}, "-type", "receita", "-amount", "1.5"))

	assert.Equal(t, sample+"4,31/03/2025,Receita,1.5,,,\n", readFile(t, path))
}

func TestAddCmd_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "missing type", args: []string{"-amount", "1"}},
		{name: "missing amount", args: []string{"-type", "r"}},
		{name: "bad type", args: []string{"-type", "salary", "-amount", "1"}},
		{name: "bad amount", args: []string{"-type", "r", "-amount", "1,5"}},
		{name: "bad date", args: []string{"-type", "r", "-amount", "1", "-d", "2025-03-05"}},
		{name: "investment without rate", args: []string{"-type", "i", "-amount", "1"}},
		{name: "bad rate", args: []string{"-type", "i", "-amount", "1", "-rate", "x"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := useLedger(t, sample)
			assert.Equal(t, subcommands.ExitUsageError, run(t, &addCmd{}, tc.args...))
			assert.Equal(t, sample, readFile(t, path), "the ledger must not change")
		})
	}
}

func TestEditCmd(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string // the edited line
	}{
		{name: "type only", args: []string{"-id", "1", "-type", "despesa"}, want: "1,31/03/2025,Despesa,-100,,,\n"},
		{name: "amount only", args: []string{"-id", "2", "-amount", "45"}, want: "2,31/03/2025,Despesa,-45,,,\n"},
		{name: "investment rate", args: []string{"-id", "3", "-rate", "2"}, want: "3,31/03/2025,Investimento,1000,2,01/03/2025,\n"},
		{name: "to investment", args: []string{"-id", "1", "-type", "i", "-rate", "0.5", "-since", "02/03/2025"}, want: "1,31/03/2025,Investimento,100,0.5,02/03/2025,\n"},
		{name: "investment to income", args: []string{"-id", "3", "-type", "r"}, want: "3,31/03/2025,Receita,1000,,,\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := useLedger(t, sample)
			require.Equal(t, subcommands.ExitSuccess, run(t, &editCmd{}, tc.args...))
			assert.Contains(t, readFile(t, path), tc.want)
		})
	}
}

func TestEditCmd_Errors(t *testing.T) {
	path := useLedger(t, sample)
	assert.Equal(t, subcommands.ExitUsageError, run(t, &editCmd{}))
	assert.Equal(t, subcommands.ExitFailure, run(t, &editCmd{}, "-id", "9", "-type", "r"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &editCmd{}, "-id", "1", "-type", "i"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &editCmd{}, "-id", "1", "-amount", "abc"))
	assert.Equal(t, sample, readFile(t, path))
}

func TestRmCmd(t *testing.T) {
	path := useLedger(t, sample)

	// two records on that day.
	assert.Equal(t, subcommands.ExitUsageError, run(t, &rmCmd{}, "-d", "05/03/2025"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &rmCmd{}))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &rmCmd{}, "-id", "1", "-d", "05/03/2025"))
	assert.Equal(t, subcommands.ExitFailure, run(t, &rmCmd{}, "-id", "9"))
	assert.Equal(t, subcommands.ExitFailure, run(t, &rmCmd{}, "-d", "01/01/2000"))
	assert.Equal(t, sample, readFile(t, path))

	assert.Equal(t, subcommands.ExitSuccess, run(t, &rmCmd{}, "-id", "2"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, &rmCmd{}, "-d", "06/03/2025"))
	assert.Equal(t, header+"1,05/03/2025,Receita,100,,,\n", readFile(t, path))
}

func TestRevalueAndMonthlyCmd(t *testing.T) {
	path := useLedger(t, sample)

	assert.Equal(t, subcommands.ExitFailure, run(t, &monthlyCmd{}), "investments are not revalued yet")

	require.Equal(t, subcommands.ExitSuccess, run(t, &revalueCmd{}))
	assert.Contains(t, readFile(t, path), "3,06/03/2025,Investimento,1000,1,01/03/2025,1010\n")

	assert.Equal(t, subcommands.ExitSuccess, run(t, &monthlyCmd{}, "-format", "table"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, &monthlyCmd{}))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &monthlyCmd{}, "-format", "html"))

	assert.Equal(t, subcommands.ExitUsageError, run(t, &revalueCmd{}, "-d", "tomorrow"))
}

func TestListCmd(t *testing.T) {
	useLedger(t, sample)
	assert.Equal(t, subcommands.ExitSuccess, run(t, &listCmd{}))
	assert.Equal(t, subcommands.ExitSuccess, run(t, &listCmd{}, "-type", "despesa", "-format", "md"))
	assert.Equal(t, subcommands.ExitSuccess, run(t, &listCmd{}, "-min", "-50", "-max", "0"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &listCmd{}, "-min", "-50"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &listCmd{}, "-min", "a", "-max", "b"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &listCmd{}, "-type", "salary"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &listCmd{}, "-format", "html"))
}

func TestExportCmd(t *testing.T) {
	useLedger(t, sample)
	out := filepath.Join(t.TempDir(), "report.csv")

	require.Equal(t, subcommands.ExitSuccess, run(t, &exportCmd{}, "-o", out, "-type", "receita"))
	assert.Equal(t, header+"1,05/03/2025,Receita,100,,,\n", readFile(t, out))

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.Equal(t, subcommands.ExitSuccess, run(t, &exportCmd{}, "-o", empty, "-d", "01/01/2000"))
	_, err := os.Stat(empty)
	assert.True(t, os.IsNotExist(err), "nothing is exported without records")
}

func TestFmtCmd(t *testing.T) {
	path := useLedger(t, header+
		"3,06/03/2025,Investimento,1000.00,1.0,01/03/2025,\n"+
		"1,05/03/2025,Receita,100.00,,,\n"+
		"2,05/03/2025,Despesa,-40.0,,,\n")

	out := filepath.Join(t.TempDir(), "clean.csv")
	require.Equal(t, subcommands.ExitSuccess, run(t, &fmtCmd{}, "-o", out))
	assert.Equal(t, sample, readFile(t, out))

	require.Equal(t, subcommands.ExitSuccess, run(t, &fmtCmd{}))
	assert.Equal(t, sample, readFile(t, path))
}

func TestQueryCmd(t *testing.T) {
	useLedger(t, sample)
	assert.Equal(t, subcommands.ExitSuccess, run(t, &queryCmd{}, "$[*].id"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &queryCmd{}))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &queryCmd{}, "$["))
}

func TestLoadError(t *testing.T) {
	useLedger(t, header+"1,05/03/2025,Receita,abc,,,\n")
	assert.Equal(t, subcommands.ExitFailure, run(t, &listCmd{}))
	assert.Equal(t, subcommands.ExitFailure, run(t, &addCmd{}, "-type", "r", "-amount", "1"))
}

func TestLedgerPath(t *testing.T) {
	old := *ledgerFile
	t.Cleanup(func() { *ledgerFile = old })

	*ledgerFile = ""
	t.Setenv(EnvLedgerFile, "")
	assert.Equal(t, DefaultLedgerFile, LedgerPath())

	t.Setenv(EnvLedgerFile, "from_env.csv")
	assert.Equal(t, "from_env.csv", LedgerPath())

	*ledgerFile = "from_flag.csv"
	assert.Equal(t, "from_flag.csv", LedgerPath())
}

func TestEditValues(t *testing.T) {
	inv, err := ecobalance.NewRecord(3, date.MustParse("06/03/2025"), ecobalance.Investment, ecobalance.M(1000),
		&ecobalance.InvestmentTerms{Rate: ecobalance.P(1), Since: date.MustParse("01/03/2025")}, nil)
	require.NoError(t, err)

	kind, amount, terms, err := editValues(inv, "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, ecobalance.Investment, kind)
	assert.True(t, amount.Equal(ecobalance.M(1000)))
	assert.Nil(t, terms, "nil terms keep the current ones")

	_, _, terms, err = editValues(inv, "", "", "", "15/03/2025")
	require.NoError(t, err)
	require.NotNil(t, terms)
	assert.True(t, terms.Rate.Equal(ecobalance.P(1)))
	assert.Equal(t, date.MustParse("15/03/2025"), terms.Since)

	income, err := ecobalance.NewRecord(1, date.MustParse("06/03/2025"), ecobalance.Income, ecobalance.M(10), nil, nil)
	require.NoError(t, err)
	_, _, _, err = editValues(income, "i", "", "", "15/03/2025")
	assert.ErrorIs(t, err, ecobalance.ErrMissingInvestmentTerms)
}

func TestTopicCmd(t *testing.T) {
	assert.Equal(t, subcommands.ExitSuccess, run(t, &topicCmd{}, "-list"))
	assert.Equal(t, subcommands.ExitFailure, run(t, &topicCmd{}, "taxes"))
}
