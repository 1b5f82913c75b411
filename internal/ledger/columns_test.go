package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name        string
		available   []string
		wantMapping map[string]string
		wantMissing []string
	}{
		{
			name:      "canonical names",
			available: []string{"date", "category", "amount"},
			wantMapping: map[string]string{
				"date": "date", "category": "category", "amount": "amount",
			},
		},
		{
			name:      "vendor aliases",
			available: []string{"trans_date", "transaction_type", "value"},
			wantMapping: map[string]string{
				"date": "trans_date", "category": "transaction_type", "amount": "value",
			},
		},
		{
			name:      "first alias wins",
			available: []string{"date", "category", "description", "amount"},
			wantMapping: map[string]string{
				"date": "date", "category": "category", "amount": "amount",
			},
		},
		{
			name:        "missing amount",
			available:   []string{"date", "description"},
			wantMapping: map[string]string{"date": "date", "category": "description"},
			wantMissing: []string{"amount"},
		},
		{
			name:        "nothing matches",
			available:   []string{"foo", "bar"},
			wantMapping: map[string]string{},
			wantMissing: []string{"date", "category", "amount"},
		},
		{
			name:        "exact match only, no fuzzy",
			available:   []string{"dates", "categories", "amounts"},
			wantMapping: map[string]string{},
			wantMissing: []string{"date", "category", "amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping, missing := ResolveColumns(tt.available, DefaultAliases)
			assert.Equal(t, tt.wantMapping, mapping)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestParseDateLayouts(t *testing.T) {
	good := []string{
		"2024-01-05",
		"2024-1-5",
		"2024/01/05",
		"01/05/2024",
		"05-01-2024",
		"Jan 5, 2024",
		"5 Jan 2024",
		"2024-01-05 13:30:00",
	}
	for _, s := range good {
		d, ok := parseDate(s)
		assert.True(t, ok, "expected %q to parse", s)
		assert.Equal(t, 2024, d.Year(), s)
	}

	for _, s := range []string{"", "yesterday", "13/45/2024", "2024-13-01"} {
		_, ok := parseDate(s)
		assert.False(t, ok, "expected %q to fail", s)
	}
}
