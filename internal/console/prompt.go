package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashflow/internal/core"
	"cashflow/internal/ledger"
)

// errInputClosed means the input stream ended; the menu loop exits.
var errInputClosed = io.EOF

// prompter reads whitespace-trimmed answers from an input stream.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// intValue reads an integer in [min, max]. Malformed or out-of-range
// answers surface as InputFormatError for the caller to report.
func (p *prompter) intValue(label string, min, max int) (int, error) {
	raw, err := p.line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return 0, &core.InputFormatError{Prompt: fmt.Sprintf("number between %d and %d", min, max), Value: raw}
	}
	return n, nil
}

// amount reads a positive decimal amount.
func (p *prompter) amount(label string) (decimal.Decimal, error) {
	raw, err := p.line(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := core.ParseAmount(raw)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, &core.InputFormatError{Prompt: "positive amount", Value: raw}
	}
	return d, nil
}

// date reads a YYYY-MM-DD calendar date.
func (p *prompter) date(label string) (time.Time, error) {
	raw, err := p.line(label)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &core.InputFormatError{Prompt: "date (YYYY-MM-DD)", Value: raw}
	}
	return d, nil
}

// ColumnPrompt builds the interactive fallback the loader consults when
// a required column has no alias match: it shows the available columns
// and asks the user which one to use. The scanner is shared with the
// menu so buffered read-ahead cannot swallow later answers.
func ColumnPrompt(in *bufio.Scanner, out io.Writer) ledger.ColumnResolver {
	p := &prompter{in: in, out: out}
	return func(field string, available []string) (string, error) {
		fmt.Fprintf(out, "Column %q not found. Available: %s\n", field, strings.Join(available, ", "))
		return p.line(fmt.Sprintf("Enter the actual column name for %q: ", field))
	}
}
