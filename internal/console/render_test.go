package console

import (
	"bufio"
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashflow/internal/core"
)

func TestRendererMoney(t *testing.T) {
	r := Renderer{Currency: "$"}
	assert.Equal(t, "$12.50", r.Money(decimal.RequireFromString("12.5")))
	assert.Equal(t, "-$12.50", r.Money(decimal.RequireFromString("-12.5")))
	assert.Equal(t, "$0.00", r.Money(decimal.Zero))
}

func TestRendererMonths(t *testing.T) {
	r := Renderer{Currency: "$"}
	assert.Equal(t, "3.7 months", r.Months(3.714))
	assert.Equal(t, "unlimited", r.Months(math.Inf(1)))
}

func TestForecastTableColumns(t *testing.T) {
	var out bytes.Buffer
	r := Renderer{Currency: "$"}
	r.ForecastTable(&out, []core.ForecastRow{{
		Month:      "2024-04",
		Income:     decimal.NewFromInt(1000),
		Expenses:   decimal.NewFromInt(350),
		Net:        decimal.NewFromInt(650),
		Cumulative: decimal.NewFromInt(650),
	}})

	got := out.String()
	assert.Contains(t, got, "2024-04")
	assert.Contains(t, got, "$650.00")
	assert.Contains(t, strings.ToUpper(got), "CUMULATIVE SAVINGS")
}

func TestColumnPromptResolver(t *testing.T) {
	var out bytes.Buffer
	resolver := ColumnPrompt(bufio.NewScanner(strings.NewReader("when\n")), &out)

	got, err := resolver("date", []string{"when", "category", "amount"})
	require.NoError(t, err)
	assert.Equal(t, "when", got)
	assert.Contains(t, out.String(), `Column "date" not found`)
	assert.Contains(t, out.String(), "when, category, amount")
}
