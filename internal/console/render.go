package console

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"cashflow/internal/core"
)

// Renderer formats analysis results as aligned console tables.
type Renderer struct {
	Currency string
}

// Money renders a signed amount with the configured currency symbol,
// keeping the sign in front of the symbol (-$12.00).
func (r Renderer) Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + r.Currency + d.Neg().StringFixed(2)
	}
	return r.Currency + d.StringFixed(2)
}

// Months renders a fractional month count, with +Inf spelled out.
func (r Renderer) Months(m float64) string {
	if math.IsInf(m, 1) {
		return "unlimited"
	}
	return fmt.Sprintf("%.1f months", m)
}

func (r Renderer) MonthlyTable(w io.Writer, rows []core.MonthlyAggregate) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Month", "Income", "Expenses", "Net Cash Flow"})
	for _, row := range rows {
		table.Append([]string{
			row.Month.String(),
			r.Money(row.Income),
			r.Money(row.Expenses),
			r.Money(row.Net),
		})
	}
	table.Render()
}

func (r Renderer) ForecastTable(w io.Writer, rows []core.ForecastRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Month", "Income", "Expenses", "Net Cash Flow", "Cumulative Savings"})
	for _, row := range rows {
		table.Append([]string{
			row.Month,
			r.Money(row.Income),
			r.Money(row.Expenses),
			r.Money(row.Net),
			r.Money(row.Cumulative),
		})
	}
	table.Render()
}

func (r Renderer) BreakdownTable(w io.Writer, rows []core.CategoryBreakdownRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Amount", "Percentage"})
	for _, row := range rows {
		table.Append([]string{
			row.Category,
			r.Money(row.Amount),
			row.Percentage.StringFixed(2) + "%",
		})
	}
	table.Render()
}
