package analysis

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"cashflow/internal/core"
)

// TotalSavings is the final value of the date-ascending cumulative net,
// floored at zero. A negative true cumulative net reports as zero
// savings; this is a policy choice, not a balance.
func TotalSavings(ledger core.Ledger) decimal.Decimal {
	cumulative := decimal.Zero
	for _, tx := range ledger.SortedByDate() {
		cumulative = cumulative.Add(tx.Amount)
	}
	if cumulative.IsNegative() {
		return decimal.Zero
	}
	return cumulative
}

// EmergencyRunway is the number of months savings last at the
// historical average expense level. +Inf means zero average expenses,
// i.e. no survivable-limit constraint.
func EmergencyRunway(hist []core.MonthlyAggregate, savings decimal.Decimal) float64 {
	_, avgExpenses, _ := Averages(hist)
	if avgExpenses.IsZero() {
		return math.Inf(1)
	}
	return savings.Div(avgExpenses).InexactFloat64()
}

// CategoryBreakdown totals amounts per category and keeps only the net
// spenders, as positive magnitudes with their share of total spending
// rounded to two decimals. Net-positive categories are excluded
// entirely. Rows are ordered biggest spender first.
func CategoryBreakdown(ledger core.Ledger) []core.CategoryBreakdownRow {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range ledger {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	var rows []core.CategoryBreakdownRow
	totalSpend := decimal.Zero
	for category, total := range totals {
		if !total.IsNegative() {
			continue
		}
		spend := total.Neg()
		totalSpend = totalSpend.Add(spend)
		rows = append(rows, core.CategoryBreakdownRow{Category: category, Amount: spend})
	}

	for i := range rows {
		rows[i].Percentage = rows[i].Amount.Div(totalSpend).Mul(decimal.NewFromInt(100)).Round(2)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
