// Package core holds the domain values shared by the loader, the
// analysis functions and the console: transactions, month keys and the
// error taxonomy. Everything here is immutable value data.
package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Transaction is one validated ledger row. Amount is signed:
	// positive for income, negative for expenses.
	Transaction struct {
		Date     time.Time
		Category string
		Amount   decimal.Decimal
	}

	// Ledger is the validated transaction collection for one run,
	// in file order (not necessarily chronological).
	Ledger []Transaction

	// Month is a year-month key.
	Month struct {
		Year  int
		Month time.Month
	}
)

// MonthOf returns the Month key a timestamp falls into.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// SortedByDate returns a date-ascending copy of the ledger. The
// receiver is never reordered; file order is part of its contract.
func (l Ledger) SortedByDate() Ledger {
	sorted := make(Ledger, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Total returns the sum of all transaction amounts.
func (l Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range l {
		total = total.Add(tx.Amount)
	}
	return total
}
