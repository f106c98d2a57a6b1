// Package cmd implements the CLI application to manage a personal finance ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/date"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// DefaultLedgerFile is the ledger file used when neither -file nor ECOBALANCE_FILE is set.
const DefaultLedgerFile = "registros.csv"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&rmCmd{}, "records")
	c.Register(&revalueCmd{}, "records")
	c.Register(&fmtCmd{}, "records")

	c.Register(&monthlyCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&menuCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("file", "", "Path to the ledger CSV file (defaults to $"+EnvLedgerFile+" or "+DefaultLedgerFile+")")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Enable debug logging")

// today returns the date used for new and edited records.
var today = func() date.Date {
	if s := os.Getenv(EnvTestingNow); s != "" {
		if d, err := date.Parse(s); err == nil {
			return d
		}
		log.Warnf("ignoring invalid %s=%q", EnvTestingNow, s)
	}
	return date.Today()
}

// Configure loads the optional .env file of the working directory and sets up
// logging. It must be called after the command line is parsed.
func Configure() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("cannot load .env file: %v", err)
	}

	log.SetOutput(os.Stderr)
	level := log.WarnLevel
	if s := os.Getenv(EnvLogLevel); s != "" {
		l, err := log.ParseLevel(s)
		if err != nil {
			log.Warnf("ignoring invalid %s=%q: %v", EnvLogLevel, s, err)
		} else {
			level = l
		}
	}
	if *Verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

// LedgerPath returns the path of the ledger file to work with.
func LedgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if env := os.Getenv(EnvLedgerFile); env != "" {
		return env
	}
	return DefaultLedgerFile
}

// DecodeLedger loads the application ledger file, creating it if missing.
func DecodeLedger() (*ecobalance.Ledger, error) {
	return ecobalance.LoadLedger(LedgerPath(), ecobalance.WithClock(today))
}

// EncodeLedger rewrites the application ledger file.
func EncodeLedger(l *ecobalance.Ledger) error {
	return ecobalance.SaveLedger(LedgerPath(), l)
}

// printMarkdown renders markdown for the terminal, or prints it as is if it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Debugf("cannot render markdown: %v", err)
	fmt.Print(md)
}

// parseDate parses an optional date flag, an empty value returns def.
func parseDate(name, value string, def date.Date) (date.Date, error) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	d, err := date.Parse(value)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid -%s: %w", name, err)
	}
	return d, nil
}
