package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashflow/internal/core"
)

func tx(date string, category string, amount string) core.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return core.Transaction{
		Date:     d,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

// sampleLedger is the worked example: two months of one paycheck and
// one bill each.
func sampleLedger() core.Ledger {
	return core.Ledger{
		tx("2024-01-05", "Job", "1000"),
		tx("2024-01-20", "Food", "-200"),
		tx("2024-02-10", "Job", "1000"),
		tx("2024-02-15", "Rent", "-500"),
	}
}

func TestMonthlyWorkedExample(t *testing.T) {
	got := Monthly(sampleLedger())
	require.Len(t, got, 2)

	jan := got[0]
	assert.Equal(t, "2024-01", jan.Month.String())
	assert.True(t, jan.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, jan.Expenses.Equal(decimal.NewFromInt(200)))
	assert.True(t, jan.Net.Equal(decimal.NewFromInt(800)))

	feb := got[1]
	assert.Equal(t, "2024-02", feb.Month.String())
	assert.True(t, feb.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, feb.Expenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, feb.Net.Equal(decimal.NewFromInt(500)))
}

func TestMonthlyOrderedAscendingAcrossYears(t *testing.T) {
	ledger := core.Ledger{
		tx("2024-02-01", "a", "1"),
		tx("2023-11-01", "b", "1"),
		tx("2024-01-01", "c", "1"),
	}
	got := Monthly(ledger)
	require.Len(t, got, 3)
	assert.Equal(t, "2023-11", got[0].Month.String())
	assert.Equal(t, "2024-01", got[1].Month.String())
	assert.Equal(t, "2024-02", got[2].Month.String())
}

func TestMonthlyConservation(t *testing.T) {
	// Sum of monthly nets must equal the sum of all amounts.
	ledger := core.Ledger{
		tx("2024-01-01", "a", "123.45"),
		tx("2024-01-09", "b", "-67.89"),
		tx("2024-03-03", "c", "-1000"),
		tx("2024-03-04", "d", "0"),
		tx("2024-07-31", "e", "22.22"),
	}
	netSum := decimal.Zero
	for _, m := range Monthly(ledger) {
		netSum = netSum.Add(m.Net)
		assert.False(t, m.Income.IsNegative(), "income must be >= 0")
		assert.False(t, m.Expenses.IsNegative(), "expenses must be >= 0")
	}
	assert.True(t, netSum.Equal(ledger.Total()), "expected %s, got %s", ledger.Total(), netSum)
}

func TestMonthlyZeroAmounts(t *testing.T) {
	got := Monthly(core.Ledger{tx("2024-01-01", "noop", "0")})
	require.Len(t, got, 1)
	assert.True(t, got[0].Income.IsZero())
	assert.True(t, got[0].Expenses.IsZero())
	assert.True(t, got[0].Net.IsZero())
}

func TestMonthlySkipsAbsentMonths(t *testing.T) {
	ledger := core.Ledger{
		tx("2024-01-01", "a", "1"),
		tx("2024-04-01", "b", "1"),
	}
	got := Monthly(ledger)
	require.Len(t, got, 2, "no zero-filled gap rows")
}

func TestMonthlyEmptyLedger(t *testing.T) {
	assert.Empty(t, Monthly(nil))
}

func TestAverages(t *testing.T) {
	hist := Monthly(sampleLedger())
	income, expenses, net := Averages(hist)
	assert.True(t, income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, expenses.Equal(decimal.NewFromInt(350)))
	assert.True(t, net.Equal(decimal.NewFromInt(650)))
}

func TestAveragesEmptyHistory(t *testing.T) {
	income, expenses, net := Averages(nil)
	assert.True(t, income.IsZero())
	assert.True(t, expenses.IsZero())
	assert.True(t, net.IsZero())
}
