// Package analysis contains the pure computations of the analyzer:
// monthly aggregation, forward projections and summary figures. Nothing
// here mutates its inputs or touches I/O.
package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"cashflow/internal/core"
)

// Monthly groups the ledger by calendar month and totals income,
// expenses and net cash flow, ordered by month ascending. Months with
// no transactions are absent; zero-amount transactions count toward
// neither income nor expenses.
func Monthly(ledger core.Ledger) []core.MonthlyAggregate {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	buckets := make(map[core.Month]*bucket)
	for _, tx := range ledger {
		key := core.MonthOf(tx.Date)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{income: decimal.Zero, expenses: decimal.Zero}
			buckets[key] = b
		}
		switch {
		case tx.Amount.IsPositive():
			b.income = b.income.Add(tx.Amount)
		case tx.Amount.IsNegative():
			b.expenses = b.expenses.Add(tx.Amount.Neg())
		}
	}

	months := make([]core.Month, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]core.MonthlyAggregate, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		out = append(out, core.MonthlyAggregate{
			Month:    m,
			Income:   b.income,
			Expenses: b.expenses,
			Net:      b.income.Sub(b.expenses),
		})
	}
	return out
}

// Averages returns mean income, expenses and net across the whole
// historical sequence. All zero for an empty history.
func Averages(hist []core.MonthlyAggregate) (income, expenses, net decimal.Decimal) {
	income, expenses, net = decimal.Zero, decimal.Zero, decimal.Zero
	if len(hist) == 0 {
		return
	}
	for _, m := range hist {
		income = income.Add(m.Income)
		expenses = expenses.Add(m.Expenses)
		net = net.Add(m.Net)
	}
	n := decimal.NewFromInt(int64(len(hist)))
	return income.Div(n), expenses.Div(n), net.Div(n)
}
