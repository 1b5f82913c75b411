package core

import "github.com/shopspring/decimal"

// MonthlyAggregate is the income/expense/net summary for one calendar
// month. Income and Expenses are both non-negative; Net is their
// difference and equals the plain sum of the month's amounts.
type MonthlyAggregate struct {
	Month    Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// ForecastRow is one projected month. It is synthetic: nothing in the
// ledger backs it. Cumulative is the running net over the projected
// rows only; historical savings are not folded in.
type ForecastRow struct {
	Month      string
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Net        decimal.Decimal
	Cumulative decimal.Decimal
}

// CategoryBreakdownRow is one net-spending category with its share of
// total spending.
type CategoryBreakdownRow struct {
	Category   string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// SavingsPlan is the outcome of the savings-goal planner.
type SavingsPlan struct {
	Goal            decimal.Decimal
	MonthsToTarget  float64
	RequiredMonthly decimal.Decimal
	Achievable      bool
	Projection      []ForecastRow
}
