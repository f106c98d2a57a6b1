package ecobalance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/ecobalance/date"
	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// Columns are the columns of the ledger file, in order.
var Columns = []string{"id", "date", "type", "amount", "monthly_interest_rate", "investment_date", "current_value"}

// csvRecord is the CSV form of a record. Every field is kept as text so that
// parse errors can be reported with their line and column.
type csvRecord struct {
	ID           string `csv:"id"`
	Date         string `csv:"date"`
	Type         string `csv:"type"`
	Amount       string `csv:"amount"`
	Rate         string `csv:"monthly_interest_rate"`
	Since        string `csv:"investment_date"`
	CurrentValue string `csv:"current_value"`
}

func newCSVRecord(r Record) csvRecord {
	c := csvRecord{
		ID:     strconv.Itoa(r.id),
		Date:   r.date.String(),
		Type:   r.kind.String(),
		Amount: r.amount.Text(),
	}
	if inv, ok := r.Investment(); ok {
		c.Rate = inv.Rate.Text()
		c.Since = inv.Since.String()
		if v, ok := inv.CurrentValue(); ok {
			c.CurrentValue = v.Text()
		}
	}
	return c
}

// record parses c. Errors are *LoadError without a line number.
func (c csvRecord) record() (Record, error) {
	fail := func(column string, err error) (Record, error) {
		return Record{}, &LoadError{Column: column, Err: err}
	}
	id, err := strconv.Atoi(strings.TrimSpace(c.ID))
	if err != nil {
		return fail("id", fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, c.ID))
	}
	on, err := date.Parse(c.Date)
	if err != nil {
		return fail("date", err)
	}
	kind, err := ParseKind(c.Type)
	if err != nil {
		return fail("type", err)
	}
	amount, err := ParseMoney(c.Amount)
	if err != nil {
		return fail("amount", err)
	}

	var terms *InvestmentTerms
	var current *Money
	if kind == Investment {
		rate, err := ParsePercent(c.Rate)
		if err != nil {
			return fail("monthly_interest_rate", err)
		}
		since, err := date.Parse(c.Since)
		if err != nil {
			return fail("investment_date", err)
		}
		terms = &InvestmentTerms{Rate: rate, Since: since}
		if strings.TrimSpace(c.CurrentValue) != "" {
			v, err := ParseMoney(c.CurrentValue)
			if err != nil {
				return fail("current_value", err)
			}
			current = &v
		}
	} else if strings.TrimSpace(c.Rate+c.Since+c.CurrentValue) != "" {
		return fail("", fmt.Errorf("%w: %v record %d has investment fields", ErrInconsistentRecord, kind, id))
	}

	r, err := NewRecord(id, on, kind, amount, terms, current)
	if err != nil {
		return fail("", err)
	}
	return r, nil
}

// DecodeLedger reads a ledger from a CSV stream with a header row.
//
// An empty stream decodes to an empty ledger. Any malformed row fails the
// whole decoding with a *LoadError: there is no partial load.
func DecodeLedger(r io.Reader, opts ...Option) (*Ledger, error) {
	in := &lineReader{Reader: csv.NewReader(r)}
	var rows []csvRecord
	if err := gocsv.UnmarshalCSV(in, &rows); err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &LoadError{Line: parseErr.Line, Err: parseErr.Err}
		}
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}

	ledger := NewLedger(opts...)
	for i, row := range rows {
		line := in.line(i + 1) // row 0 is the header
		rec, err := row.record()
		if err == nil {
			err = ledger.add(rec)
		}
		if err != nil {
			var loadErr *LoadError
			if errors.As(err, &loadErr) {
				loadErr.Line = line
				return nil, loadErr
			}
			return nil, &LoadError{Line: line, Err: err}
		}
	}
	return ledger, nil
}

// lineReader is a gocsv.CSVReader that remembers the file line each row
// starts on. Blank lines and quoted line breaks make it differ from the row
// index.
type lineReader struct {
	*csv.Reader
	lines []int
}

func (r *lineReader) Read() ([]string, error) {
	row, err := r.Reader.Read()
	if err == nil {
		line, _ := r.FieldPos(0)
		r.lines = append(r.lines, line)
	}
	return row, err
}

func (r *lineReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// line returns the file line of the i-th row read, header included.
func (r *lineReader) line(i int) int {
	if i < len(r.lines) {
		return r.lines[i]
	}
	return i + 1
}

// EncodeRecords writes records as CSV, with the canonical header, whatever
// the kinds of the records: columns that do not apply are left empty.
func EncodeRecords(w io.Writer, records []Record) error {
	rows := make([]csvRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, newCSVRecord(r))
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// EncodeLedger writes all the records of the ledger in insertion order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	return EncodeRecords(w, l.Select())
}

// LoadLedger reads the ledger file at path. A missing file is created empty,
// and an empty ledger is returned.
func LoadLedger(path string, opts ...Option) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("file", path).Info("ledger file not found, creating an empty one")
		if err := os.WriteFile(path, nil, filePerm); err != nil {
			return nil, fmt.Errorf("cannot create ledger file %q: %w", path, err)
		}
		return NewLedger(opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot load ledger file %q: %w", path, err)
	}
	log.WithFields(log.Fields{"file": path, "records": l.Len()}).Info("loaded ledger")
	return l, nil
}

// SaveLedger rewrites the ledger file at path with all the records.
func SaveLedger(path string, l *Ledger) error {
	if err := writeFile(path, l.Select()); err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": path, "records": l.Len()}).Info("saved ledger")
	return nil
}

// ExportRecords writes records to the file at path, in the ledger file format.
func ExportRecords(path string, records []Record) error {
	if err := writeFile(path, records); err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": path, "records": len(records)}).Info("exported records")
	return nil
}

// filePerm is the mode of the files created by the ledger.
const filePerm fs.FileMode = 0o644

// writeFile writes into a temporary file renamed to path when complete, so
// that a failed write never truncates the previous file. An existing file
// keeps its permissions.
func writeFile(path string, records []Record) error {
	perm := filePerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	if err := EncodeRecords(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
