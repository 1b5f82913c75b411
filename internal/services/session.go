// Package services binds a validated ledger to the operations the menu
// offers. A Session is built once per successful load; every figure a
// handler needs hangs off it, so nothing lives in package-level state.
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"cashflow/internal/analysis"
	"cashflow/internal/core"
)

// Session is the per-run analysis context. The ledger and its derived
// figures are computed at construction and read-only afterwards.
type Session struct {
	// Now provides the reference time for projections. Overridable
	// in tests; defaults to time.Now.
	Now func() time.Time

	ledger  core.Ledger
	monthly []core.MonthlyAggregate
	savings decimal.Decimal
	runway  float64
}

func NewSession(ledger core.Ledger) *Session {
	monthly := analysis.Monthly(ledger)
	savings := analysis.TotalSavings(ledger)
	return &Session{
		Now:     time.Now,
		ledger:  ledger,
		monthly: monthly,
		savings: savings,
		runway:  analysis.EmergencyRunway(monthly, savings),
	}
}

// MonthlyCashflow returns the historical aggregates, month ascending.
func (s *Session) MonthlyCashflow() []core.MonthlyAggregate {
	return s.monthly
}

// TotalSavings is the cumulative net over the ledger, floored at zero.
func (s *Session) TotalSavings() decimal.Decimal {
	return s.savings
}

// Runway is the emergency-fund runway in months; +Inf when the
// historical average expenses are zero.
func (s *Session) Runway() float64 {
	return s.runway
}

// Averages returns mean monthly income, expenses and net.
func (s *Session) Averages() (income, expenses, net decimal.Decimal) {
	return analysis.Averages(s.monthly)
}

// ProjectNoChange projects months ahead at historical averages.
func (s *Session) ProjectNoChange(months int) []core.ForecastRow {
	return analysis.ProjectNoChange(s.monthly, months, s.Now())
}

// PlanSavingsGoal runs the savings-goal planner against history.
func (s *Session) PlanSavingsGoal(goal decimal.Decimal, target time.Time) (*core.SavingsPlan, error) {
	return analysis.PlanSavingsGoal(s.monthly, goal, target, s.Now())
}

// WhatIf projects months ahead under a hypothetical adjustment.
func (s *Session) WhatIf(months int, scenario analysis.Scenario, amount decimal.Decimal) ([]core.ForecastRow, error) {
	return analysis.WhatIf(s.monthly, months, scenario, amount, s.Now())
}

// CategoryBreakdown returns spending shares per net-spending category.
func (s *Session) CategoryBreakdown() []core.CategoryBreakdownRow {
	return analysis.CategoryBreakdown(s.ledger)
}
