// Package statement decodes CSV bank statements into entries ready for import.
package statement

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order for the date column.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	time.RFC3339,
}

type row struct {
	Date          string `csv:"date"`
	Amount        string `csv:"amount"`
	Description   string `csv:"description"`
	Reference     string `csv:"reference"`
	AccountNumber string `csv:"account_number"`
	AccountName   string `csv:"account_name"`
}

// Entry is one decoded statement line.
type Entry struct {
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	Reference     string
	AccountNumber string
	AccountName   string
}

// ParseError identifies the line and column that could not be decoded.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("statement line %d: failed to parse %s='%s': %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a statement with a header row naming at least the date and
// amount columns. Blank lines are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var rows []*row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, nil
		}
		return nil, fmt.Errorf("read statement: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, rw := range rows {
		line := i + 2
		if strings.TrimSpace(rw.Date+rw.Amount+rw.Description) == "" {
			continue
		}

		date, err := parseDate(rw.Date)
		if err != nil {
			return nil, &ParseError{Line: line, Field: "date", Value: rw.Date, Err: err}
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(rw.Amount))
		if err != nil {
			return nil, &ParseError{Line: line, Field: "amount", Value: rw.Amount, Err: err}
		}

		entries = append(entries, Entry{
			Date:          date,
			Amount:        amount,
			Description:   strings.TrimSpace(rw.Description),
			Reference:     strings.TrimSpace(rw.Reference),
			AccountNumber: strings.TrimSpace(rw.AccountNumber),
			AccountName:   strings.TrimSpace(rw.AccountName),
		})
	}
	return entries, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
