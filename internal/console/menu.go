// Package console implements the interactive surface: the numbered
// menu loop, the prompts behind it and the table rendering. All input
// and output flow through injected reader/writer pairs so the loop is
// testable without a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"cashflow/internal/analysis"
	"cashflow/internal/core"
	"cashflow/internal/log"
	"cashflow/internal/services"
)

// Menu drives one interactive session over a loaded ledger.
type Menu struct {
	p         *prompter
	out       io.Writer
	session   *services.Session
	render    Renderer
	maxMonths int
	log       *log.Logger
}

func NewMenu(in *bufio.Scanner, out io.Writer, session *services.Session, currency string, maxMonths int, logger *log.Logger) *Menu {
	return &Menu{
		p:         &prompter{in: in, out: out},
		out:       out,
		session:   session,
		render:    Renderer{Currency: currency},
		maxMonths: maxMonths,
		log:       logger.WithComponent("menu"),
	}
}

// Run loops until the user quits or input ends. Prompt format errors
// abort the current action only; the loop itself never dies on them.
func (m *Menu) Run() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "==================================================")
	fmt.Fprintln(m.out, "     PERSONAL FINANCE ANALYZER - MAIN MENU")
	fmt.Fprintln(m.out, "==================================================")

	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Choose an option:")
		fmt.Fprintln(m.out, "1. Monthly Cash Flow Summary")
		fmt.Fprintln(m.out, "2. Total Savings")
		fmt.Fprintln(m.out, "3. Emergency Fund Runway")
		fmt.Fprintln(m.out, "4. Savings Goal Planner")
		fmt.Fprintln(m.out, "5. Future Cash Flow Projection (No Changes)")
		fmt.Fprintln(m.out, "6. What-If Scenario Analysis")
		fmt.Fprintln(m.out, "7. Category Spending Breakdown")
		fmt.Fprintln(m.out, "0. Exit")

		choice, err := m.p.line("\nEnter your choice (0-7): ")
		if err != nil {
			return
		}

		var actionErr error
		switch choice {
		case "1":
			m.showMonthlySummary()
		case "2":
			m.showTotalSavings()
		case "3":
			m.showRunway()
		case "4":
			actionErr = m.runSavingsGoalPlanner()
		case "5":
			actionErr = m.runNoChangeProjection()
		case "6":
			actionErr = m.runWhatIf()
		case "7":
			m.showCategoryBreakdown()
		case "0":
			fmt.Fprintln(m.out, "\nThank you for using Personal Finance Analyzer. Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter 0-7.")
		}

		if actionErr != nil {
			if errors.Is(actionErr, errInputClosed) {
				return
			}
			var formatErr *core.InputFormatError
			if errors.As(actionErr, &formatErr) {
				fmt.Fprintf(m.out, "Invalid input: expected %s, got %q.\n", formatErr.Prompt, formatErr.Value)
				continue
			}
			// Nothing else should reach here; log and keep the
			// session alive.
			m.log.Error("menu action failed", "choice", choice, "error", actionErr)
			fmt.Fprintf(m.out, "Error: %v\n", actionErr)
		}
	}
}

func (m *Menu) showMonthlySummary() {
	fmt.Fprintln(m.out, "\n--- Monthly Cash Flow Summary ---")
	m.render.MonthlyTable(m.out, m.session.MonthlyCashflow())
}

func (m *Menu) showTotalSavings() {
	fmt.Fprintln(m.out, "\n--- Total Savings ---")
	fmt.Fprintf(m.out, "Total Savings from Data: %s\n", m.render.Money(m.session.TotalSavings()))
}

func (m *Menu) showRunway() {
	_, avgExpenses, _ := m.session.Averages()
	fmt.Fprintln(m.out, "\n--- Emergency Fund Runway ---")
	fmt.Fprintf(m.out, "Runway: %s\n", m.render.Months(m.session.Runway()))
	fmt.Fprintf(m.out, "Savings: %s\n", m.render.Money(m.session.TotalSavings()))
	fmt.Fprintf(m.out, "Avg Monthly Expenses: %s\n", m.render.Money(avgExpenses))
}

func (m *Menu) runSavingsGoalPlanner() error {
	fmt.Fprintln(m.out, "\n--- Savings Goal Planner ---")
	goal, err := m.p.amount("Enter your savings goal amount: ")
	if err != nil {
		return err
	}
	target, err := m.p.date("Enter your target date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	plan, err := m.session.PlanSavingsGoal(goal, target)
	var planErr *core.PlanningError
	if errors.As(err, &planErr) {
		fmt.Fprintf(m.out, "Error: %s\n", planErr.Reason)
		return nil
	}
	if err != nil {
		return err
	}

	achievable := "No"
	if plan.Achievable {
		achievable = "Yes"
	}
	fmt.Fprintln(m.out, "\nSavings Goal Plan:")
	fmt.Fprintf(m.out, "Goal Amount: %s\n", m.render.Money(plan.Goal))
	fmt.Fprintf(m.out, "Target Date: %s\n", target.Format("2006-01-02"))
	fmt.Fprintf(m.out, "Months to Target: %.1f\n", plan.MonthsToTarget)
	fmt.Fprintf(m.out, "Required Monthly Savings: %s\n", m.render.Money(plan.RequiredMonthly))
	fmt.Fprintf(m.out, "Achievable: %s\n", achievable)
	fmt.Fprintln(m.out, "\nProjected Cash Flow with Savings Goal:")
	m.render.ForecastTable(m.out, plan.Projection)
	return nil
}

func (m *Menu) runNoChangeProjection() error {
	fmt.Fprintln(m.out, "\n--- Future Cash Flow Projection (No Changes) ---")
	months, err := m.p.intValue("How many months to project? ", 1, m.maxMonths)
	if err != nil {
		return err
	}

	rows := m.session.ProjectNoChange(months)
	fmt.Fprintln(m.out, "\nProjected Cash Flow:")
	m.render.ForecastTable(m.out, rows)
	if len(rows) > 0 {
		final := rows[len(rows)-1].Cumulative
		fmt.Fprintf(m.out, "\nFinal Cumulative Savings after %d months: %s\n", months, m.render.Money(final))
	}
	return nil
}

func (m *Menu) runWhatIf() error {
	fmt.Fprintln(m.out, "\n--- What-If Scenario Analysis ---")
	months, err := m.p.intValue("How many months to project? ", 1, m.maxMonths)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\nScenario Types:")
	fmt.Fprintln(m.out, "1. Decrease Spending")
	fmt.Fprintln(m.out, "2. Increase Savings")
	fmt.Fprintln(m.out, "3. Both (balanced approach)")
	choice, err := m.p.line("Choose scenario (1-3): ")
	if err != nil {
		return err
	}

	// An unrecognized answer falls back to decrease_spending, same
	// as the historical behavior of this tool.
	scenario := analysis.ScenarioDecreaseSpending
	label := "Enter amount to decrease spending by: "
	switch choice {
	case "2":
		scenario = analysis.ScenarioIncreaseSavings
		label = "Enter amount to increase savings by: "
	case "3":
		scenario = analysis.ScenarioBoth
		label = "Enter total amount to adjust (split between income/expenses): "
	}

	amount, err := m.p.amount(label)
	if err != nil {
		return err
	}

	rows, err := m.session.WhatIf(months, scenario, amount)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\n--- What-If Scenario: %s ---\n", scenarioDescription(scenario, amount, m.render))
	m.render.ForecastTable(m.out, rows)

	// Baseline comparison against a no-change projection of the same
	// horizon.
	_, _, avgNet := m.session.Averages()
	baseline := avgNet.Mul(decimal.NewFromInt(int64(months)))
	scenarioFinal := rows[len(rows)-1].Cumulative
	difference := scenarioFinal.Sub(baseline)

	fmt.Fprintln(m.out, "\nComparison:")
	fmt.Fprintf(m.out, "Baseline Final Worth (no changes): %s\n", m.render.Money(baseline))
	fmt.Fprintf(m.out, "Scenario Final Worth: %s\n", m.render.Money(scenarioFinal))
	if baseline.IsZero() {
		fmt.Fprintf(m.out, "Difference: %s\n", m.render.Money(difference))
	} else {
		pct := difference.Div(baseline).Mul(decimal.NewFromInt(100))
		fmt.Fprintf(m.out, "Difference: %s (%s%%)\n", m.render.Money(difference), pct.StringFixed(1))
	}
	return nil
}

func scenarioDescription(s analysis.Scenario, amount decimal.Decimal, r Renderer) string {
	switch s {
	case analysis.ScenarioIncreaseSavings:
		return "Increase savings by " + r.Money(amount)
	case analysis.ScenarioBoth:
		half := r.Money(amount.Div(decimal.NewFromInt(2)))
		return fmt.Sprintf("Balanced adjustment: +%s income, -%s expenses", half, half)
	default:
		return "Decrease spending by " + r.Money(amount)
	}
}

func (m *Menu) showCategoryBreakdown() {
	fmt.Fprintln(m.out, "\n--- Category Spending Breakdown ---")
	rows := m.session.CategoryBreakdown()
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No net-spending categories in this ledger.")
		return
	}
	m.render.BreakdownTable(m.out, rows)

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	fmt.Fprintf(m.out, "\nTotal Expenses: %s\n", m.render.Money(total))
}
