// Package generator produces synthetic student-budget ledgers for
// trying out the analyzer. It is a fixture producer: nothing in the
// analysis pipeline depends on it.
package generator

import (
	"encoding/csv"
	"io"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"cashflow/internal/core"
)

type categoryRange struct {
	name     string
	min, max float64
}

// Typical student cash flows: sparse income, frequent spending.
var (
	incomeCategories = []categoryRange{
		{"Part-time Job", 200, 500},
		{"Scholarship", 0, 1000},
		{"Allowance", 50, 200},
	}
	expenseCategories = []categoryRange{
		{"Rent", 400, 600},
		{"Food", 50, 150},
		{"Tuition", 1000, 2000},
		{"Books", 50, 200},
		{"Entertainment", 20, 100},
		{"Utilities", 30, 80},
		{"Transportation", 20, 100},
		{"Clothing", 50, 200},
	}
)

const (
	incomeChance  = 0.3
	expenseChance = 0.7
)

// Config bounds one generation run. The walk visits every seventh day
// from Start up to and including End.
type Config struct {
	Start time.Time
	End   time.Time
	Seed  int64
}

func DefaultConfig() Config {
	return Config{
		Start: time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		Seed:  time.Now().UnixNano(),
	}
}

// Generate walks the date range week by week, rolling independently
// for an income and an expense transaction. Output is chronological
// and deterministic for a fixed seed.
func Generate(cfg Config) core.Ledger {
	rng := rand.New(rand.NewSource(cfg.Seed))

	var out core.Ledger
	for day := cfg.Start; !day.After(cfg.End); day = day.AddDate(0, 0, 7) {
		if rng.Float64() < incomeChance {
			c := incomeCategories[rng.Intn(len(incomeCategories))]
			out = append(out, core.Transaction{
				Date:     day,
				Category: c.name,
				Amount:   randomAmount(rng, c),
			})
		}
		if rng.Float64() < expenseChance {
			c := expenseCategories[rng.Intn(len(expenseCategories))]
			out = append(out, core.Transaction{
				Date:     day,
				Category: c.name,
				Amount:   randomAmount(rng, c).Neg(),
			})
		}
	}
	return out
}

func randomAmount(rng *rand.Rand, c categoryRange) decimal.Decimal {
	v := c.min + rng.Float64()*(c.max-c.min)
	return decimal.NewFromFloat(v).Round(2)
}

// WriteCSV writes the ledger in the canonical date,category,amount
// form the loader maps without any alias or prompt fallback.
func WriteCSV(w io.Writer, ledger core.Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "category", "amount"}); err != nil {
		return err
	}
	for _, tx := range ledger {
		record := []string{
			tx.Date.Format("2006-01-02"),
			tx.Category,
			tx.Amount.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
