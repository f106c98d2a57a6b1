package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/date"
	"github.com/etnz/ecobalance/renderer"
	log "github.com/sirupsen/logrus"
)

const menuText = `
===================================
    EcoBalance - Main Menu
===================================
Type a number to run the matching action:
    1) Add a record
    2) List records
    3) Edit a record
    4) Revalue investments
    5) Delete a record
    6) Monthly summary
    7) Export records

    To save, type 'SAVE' or 'S'. Changes are lost unless saved.
    To quit, type 'X'.
`

// errEOF is returned by prompts when the input is exhausted.
var errEOF = errors.New("end of input")

// shell is the interactive menu. Changes are kept in memory until saved.
type shell struct {
	in     *bufio.Scanner
	out    io.Writer
	ledger *ecobalance.Ledger
	path   string
	dirty  bool // unsaved changes
}

func newShell(in io.Reader, out io.Writer, ledger *ecobalance.Ledger, path string) *shell {
	return &shell{in: bufio.NewScanner(in), out: out, ledger: ledger, path: path}
}

func (s *shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

// ask prints the question and reads one line of input.
func (s *shell) ask(question string) (string, error) {
	s.printf("%s\n>> ", question)
	if !s.in.Scan() {
		s.printf("\n")
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// yes reports whether answer is a yes in english or portuguese.
func yes(answer string) bool {
	switch strings.ToUpper(answer) {
	case "Y", "YES", "S", "SIM":
		return true
	}
	return false
}

// Run loops over the menu until the user quits or the input ends.
func (s *shell) Run() error {
	for {
		s.printf("%s", menuText)
		option, err := s.ask("")
		if errors.Is(err, errEOF) {
			return s.quit()
		}
		if err != nil {
			return err
		}

		switch strings.ToUpper(option) {
		case "1":
			err = s.add()
		case "2":
			err = s.list()
		case "3":
			err = s.edit()
		case "4":
			err = s.revalue()
		case "5":
			err = s.remove()
		case "6":
			s.monthly()
		case "7":
			err = s.export()
		case "S", "SAVE", "SALVAR":
			err = s.save()
		default:
			return s.quit()
		}
		if errors.Is(err, errEOF) {
			return s.quit()
		}
		if err != nil {
			return err
		}
	}
}

func (s *shell) quit() error {
	if s.dirty {
		s.printf("Warning: unsaved changes are lost.\n")
	}
	s.printf("See you next time!\n")
	return nil
}

func (s *shell) save() error {
	if err := ecobalance.SaveLedger(s.path, s.ledger); err != nil {
		return err
	}
	s.dirty = false
	s.printf("Records saved to %s.\n", s.path)
	return nil
}

// askKind asks for a record type. When keep is true an empty answer returns
// current.
func (s *shell) askKind(question string, keep bool, current ecobalance.Kind) (ecobalance.Kind, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return 0, err
		}
		if answer == "" && keep {
			return current, nil
		}
		if k, err := ecobalance.ParseKind(answer); err == nil {
			return k, nil
		}
		s.printf("Invalid record type...\n")
	}
}

// askMoney asks for an amount. When keep is true an empty answer returns
// current.
func (s *shell) askMoney(question string, keep bool, current ecobalance.Money) (ecobalance.Money, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return ecobalance.Money{}, err
		}
		if answer == "" && keep {
			return current, nil
		}
		if m, err := ecobalance.ParseMoney(answer); err == nil {
			return m, nil
		}
		s.printf("Invalid amount...\n")
	}
}

// askRate asks for a monthly interest rate. When keep is true an empty answer
// returns current.
func (s *shell) askRate(question string, keep bool, current ecobalance.Percent) (ecobalance.Percent, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return ecobalance.Percent{}, err
		}
		if answer == "" && keep {
			return current, nil
		}
		if p, err := ecobalance.ParsePercent(answer); err == nil {
			return p, nil
		}
		s.printf("Invalid rate...\n")
	}
}

// askDate asks for a date, offering today first.
func (s *shell) askDate(what string) (date.Date, error) {
	answer, err := s.ask(fmt.Sprintf("%s: use today's date? [Y/N]", what))
	if err != nil {
		return date.Date{}, err
	}
	if yes(answer) {
		return today(), nil
	}
	return s.askDay("Enter the date (DD/MM/YYYY):", false, date.Date{})
}

// askDay asks for a date in DD/MM/YYYY form. When keep is true an empty
// answer returns current.
func (s *shell) askDay(question string, keep bool, current date.Date) (date.Date, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return date.Date{}, err
		}
		if answer == "" && keep {
			return current, nil
		}
		if d, err := date.Parse(answer); err == nil {
			return d, nil
		}
		s.printf("Invalid date, the expected format is DD/MM/YYYY...\n")
	}
}

// askID asks for the id of an existing record, among candidates if not nil.
func (s *shell) askID(question string, candidates []ecobalance.Record) (int, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return 0, err
		}
		id, err := strconv.Atoi(answer)
		if err != nil || id <= 0 {
			s.printf("Invalid id, please enter a number.\n")
			continue
		}
		if candidates != nil {
			for _, r := range candidates {
				if r.ID() == id {
					return id, nil
				}
			}
			s.printf("Id not found, please try again.\n")
			continue
		}
		if _, err := s.ledger.Get(id); errors.Is(err, ecobalance.ErrNotFound) {
			s.printf("Id not found, please try again.\n")
			continue
		}
		return id, nil
	}
}

func (s *shell) table(records []ecobalance.Record) {
	if len(records) == 0 {
		s.printf("No records.\n")
		return
	}
	renderer.RecordsTable(s.out, records)
}

func (s *shell) add() error {
	kind, err := s.askKind("Type of the record: 'r' for income (receita), 'i' for investment, 'd' for expense (despesa).", false, 0)
	if err != nil {
		return err
	}
	amount, err := s.askMoney(fmt.Sprintf("Amount of the %s without sign, e.g. 18.25:", kind), false, ecobalance.Money{})
	if err != nil {
		return err
	}
	on, err := s.askDate("Record date")
	if err != nil {
		return err
	}
	var terms *ecobalance.InvestmentTerms
	if kind == ecobalance.Investment {
		terms = &ecobalance.InvestmentTerms{}
		if terms.Rate, err = s.askRate("Monthly interest rate in percent, e.g. '5' for 5% a month:", false, ecobalance.Percent{}); err != nil {
			return err
		}
		if terms.Since, err = s.askDate("Investment date"); err != nil {
			return err
		}
	}
	id, err := s.ledger.Create(kind, amount, on, terms)
	if err != nil {
		s.printf("Cannot create the record: %v\n", err)
		return nil
	}
	s.dirty = true
	s.printf("Record %d created.\n", id)
	return nil
}

func (s *shell) list() error {
	s.printf("Choose a filter:\n1) By date\n2) By type\n3) By amount\n")
	option, err := s.ask("Or press ENTER to list all records.")
	if err != nil {
		return err
	}

	var filter ecobalance.Filter
	switch option {
	case "":
		s.table(s.ledger.Select())
		return nil
	case "1":
		answer, err := s.ask("Enter the date (DD/MM/YYYY):")
		if err != nil {
			return err
		}
		on, err := date.Parse(answer)
		if err != nil {
			s.printf("Invalid date.\n")
			return nil
		}
		filter = ecobalance.ByDate(on)
	case "2":
		answer, err := s.ask("Enter the type ('Receita', 'Despesa' or 'Investimento'):")
		if err != nil {
			return err
		}
		if filter, err = ecobalance.ByKind(answer); err != nil {
			s.printf("Invalid type.\n")
			return nil
		}
	case "3":
		lo, err := s.ask("Minimum amount:")
		if err != nil {
			return err
		}
		hi, err := s.ask("Maximum amount:")
		if err != nil {
			return err
		}
		if filter, err = ecobalance.ByAmountRange(lo, hi); err != nil {
			s.printf("Invalid amount range.\n")
			return nil
		}
	default:
		s.printf("Invalid filter option.\n")
		return nil
	}

	records := s.ledger.Select(filter)
	if len(records) == 0 {
		s.printf("No records match.\n")
		return nil
	}
	s.printf("%d records found:\n", len(records))
	s.table(records)
	return nil
}

func (s *shell) edit() error {
	s.table(s.ledger.Select())
	if s.ledger.Len() == 0 {
		return nil
	}
	id, err := s.askID("Id of the record to edit:", nil)
	if err != nil {
		return err
	}
	current, err := s.ledger.Get(id)
	if err != nil {
		return err
	}

	kind, err := s.askKind(fmt.Sprintf("Current type: %v. New type: 'r', 'i' or 'd' (ENTER keeps it).", current.Kind()), true, current.Kind())
	if err != nil {
		return err
	}
	amount, err := s.askMoney(fmt.Sprintf("Current amount: %v. New amount (ENTER keeps it):", current.Amount().Text()), true, current.Amount())
	if err != nil {
		return err
	}

	var terms *ecobalance.InvestmentTerms
	if kind == ecobalance.Investment {
		inv, wasInvestment := current.Investment()
		t := inv.InvestmentTerms
		if wasInvestment {
			t.Rate, err = s.askRate(fmt.Sprintf("Current monthly rate: %v. New rate (ENTER keeps it):", inv.Rate), true, inv.Rate)
		} else {
			t.Rate, err = s.askRate("Monthly interest rate in percent:", false, ecobalance.Percent{})
		}
		if err != nil {
			return err
		}
		if wasInvestment {
			t.Since, err = s.askDay(fmt.Sprintf("Current investment date: %v. New date DD/MM/YYYY (ENTER keeps it):", inv.Since), true, inv.Since)
		} else {
			t.Since, err = s.askDate("Investment date")
		}
		if err != nil {
			return err
		}
		terms = &t
	}

	if err := s.ledger.Update(id, kind, amount, terms); err != nil {
		s.printf("Cannot update the record: %v\n", err)
		return nil
	}
	s.dirty = true
	s.printf("Record %d updated.\n", id)
	return nil
}

func (s *shell) revalue() error {
	if err := s.ledger.RevalueAll(today()); err != nil {
		s.printf("Cannot revalue investments: %v\n", err)
		return nil
	}
	s.dirty = true
	s.printf("Investments revalued.\n")
	return nil
}

func (s *shell) remove() error {
	s.table(s.ledger.Select())
	option, err := s.ask("Type 'D' to delete by date, 'I' to delete by id, or 'S' to go back to the menu:")
	if err != nil {
		return err
	}

	var id int
	switch strings.ToUpper(option) {
	case "D":
		on, err := s.askDay("Enter the date (DD/MM/YYYY):", false, date.Date{})
		if err != nil {
			return err
		}
		candidates := s.ledger.Select(ecobalance.ByDate(on))
		switch len(candidates) {
		case 0:
			s.printf("No record found on %v.\n", on)
			return nil
		case 1:
			id = candidates[0].ID()
		default:
			s.printf("There are several records on this date:\n")
			for _, r := range candidates {
				s.printf("  %v\n", r)
			}
			if id, err = s.askID("Id of the record to delete:", candidates); err != nil {
				return err
			}
		}
	case "I":
		if s.ledger.Len() == 0 {
			return nil
		}
		if id, err = s.askID("Id of the record to delete:", nil); err != nil {
			return err
		}
	case "S":
		return nil
	default:
		s.printf("Invalid option.\n")
		return nil
	}

	answer, err := s.ask(fmt.Sprintf("Do you really want to delete record %d? [Y/N]", id))
	if err != nil {
		return err
	}
	if !yes(answer) {
		s.printf("Deletion cancelled.\n")
		return nil
	}
	if err := s.ledger.Delete(id); err != nil {
		return err
	}
	s.dirty = true
	s.printf("Record %d deleted.\n", id)
	return nil
}

func (s *shell) monthly() {
	totals, err := ecobalance.MonthlySummary(s.ledger)
	var stale *ecobalance.StaleValuationError
	if errors.As(err, &stale) {
		s.printf("Warning: the investment recorded on %v has not been revalued.\n", stale.Date)
		s.printf("Please revalue investments (option 4) before computing monthly results.\n")
		return
	}
	if err != nil {
		s.printf("Cannot compute monthly results: %v\n", err)
		return
	}
	s.printf("\nMonthly results:\n")
	renderer.MonthlyTable(s.out, renderer.NewMonthly(totals))
}

func (s *shell) export() error {
	n, err := export(s.ledger, DefaultReportFile)
	if err != nil {
		s.printf("Cannot export records: %v\n", err)
		log.WithField("file", DefaultReportFile).Debugf("export failed: %v", err)
		return nil
	}
	if n == 0 {
		s.printf("No data to export.\n")
		return nil
	}
	s.printf("Records exported to %s.\n", DefaultReportFile)
	return nil
}
