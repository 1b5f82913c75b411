package analysis

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cashflow/internal/core"
)

// Scenario selects the adjustment applied by WhatIf.
type Scenario string

const (
	ScenarioDecreaseSpending Scenario = "decrease_spending"
	ScenarioIncreaseSavings  Scenario = "increase_savings"
	ScenarioBoth             Scenario = "both"
)

// daysPerMonth is the mean Gregorian month length used to turn a
// day span into fractional months.
const daysPerMonth = 30.44

// monthLabel renders the i-th month after from (i >= 1) as YYYY-MM.
// Arithmetic runs on the first of the month so late-month reference
// dates cannot skip a month.
func monthLabel(from time.Time, i int) string {
	base := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, i, 0).Format("2006-01")
}

// project emits months rows of identical income/expenses with a
// running cumulative net. All three projection modes reduce to this.
func project(income, expenses decimal.Decimal, months int, from time.Time) []core.ForecastRow {
	net := income.Sub(expenses)
	rows := make([]core.ForecastRow, 0, months)
	cumulative := decimal.Zero
	for i := 1; i <= months; i++ {
		cumulative = cumulative.Add(net)
		rows = append(rows, core.ForecastRow{
			Month:      monthLabel(from, i),
			Income:     income,
			Expenses:   expenses,
			Net:        net,
			Cumulative: cumulative,
		})
	}
	return rows
}

// ProjectNoChange extends history forward under historical averages.
// The cumulative column covers projected months only.
func ProjectNoChange(hist []core.MonthlyAggregate, months int, from time.Time) []core.ForecastRow {
	income, expenses, _ := Averages(hist)
	return project(income, expenses, months, from)
}

// PlanSavingsGoal computes the monthly saving required to reach goal by
// target and whether the historical net cash flow supports it. The goal
// is modeled as a forced monthly expense in the attached projection,
// which spans floor(months-to-target) months. A target that is not in
// the future yields a PlanningError.
func PlanSavingsGoal(hist []core.MonthlyAggregate, goal decimal.Decimal, target, now time.Time) (*core.SavingsPlan, error) {
	days := target.Sub(now).Hours() / 24
	monthsToTarget := days / daysPerMonth
	if monthsToTarget <= 0 {
		return nil, &core.PlanningError{Reason: "target date in past"}
	}

	required := goal.Div(decimal.NewFromFloat(monthsToTarget))
	income, expenses, avgNet := Averages(hist)
	return &core.SavingsPlan{
		Goal:            goal,
		MonthsToTarget:  monthsToTarget,
		RequiredMonthly: required,
		Achievable:      required.LessThanOrEqual(avgNet),
		Projection:      project(income, expenses.Add(required), int(monthsToTarget), now),
	}, nil
}

// WhatIf projects months rows under a hypothetical adjustment. The
// "both" scenario splits the amount between an income raise and a
// spending cut.
func WhatIf(hist []core.MonthlyAggregate, months int, scenario Scenario, amount decimal.Decimal, from time.Time) ([]core.ForecastRow, error) {
	income, expenses, _ := Averages(hist)

	switch scenario {
	case ScenarioDecreaseSpending:
		expenses = expenses.Sub(amount)
	case ScenarioIncreaseSavings:
		// Saving more is modeled as spending more: the money still
		// leaves the monthly budget.
		expenses = expenses.Add(amount)
	case ScenarioBoth:
		half := amount.Div(decimal.NewFromInt(2))
		expenses = expenses.Sub(half)
		income = income.Add(half)
	default:
		return nil, &core.PlanningError{Reason: fmt.Sprintf("unknown scenario %q", scenario)}
	}

	return project(income, expenses, months, from), nil
}
