package ledger

import (
	"fmt"
	"strings"

	"cashflow/internal/core"
)

// RequiredFields are the semantic columns every ledger must provide,
// in resolution order.
var RequiredFields = []string{"date", "category", "amount"}

// DefaultAliases maps each required field to the vendor column names it
// may appear under. First match wins; matching is case-insensitive and
// exact (no fuzzy matching).
var DefaultAliases = map[string][]string{
	"date":     {"date", "transaction_date", "trans_date"},
	"category": {"category", "description", "type", "transaction_type"},
	"amount":   {"amount", "value", "transaction_amount"},
}

// ColumnResolver supplies a column name for a required field that no
// alias matched. The console installs an interactive prompt here; tests
// install a fixed mapping. Returning an error aborts the load.
type ColumnResolver func(field string, available []string) (string, error)

// ResolveColumns maps required fields onto available column names using
// the alias table. It returns the resolved mapping plus the fields that
// found no alias match, leaving any fallback strategy to the caller.
func ResolveColumns(available []string, aliases map[string][]string) (map[string]string, []string) {
	index := make(map[string]string, len(available))
	for _, col := range available {
		index[strings.ToLower(strings.TrimSpace(col))] = col
	}

	mapping := make(map[string]string, len(RequiredFields))
	var missing []string
	for _, field := range RequiredFields {
		found := false
		for _, alias := range aliases[field] {
			if col, ok := index[alias]; ok {
				mapping[field] = col
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, field)
		}
	}
	return mapping, missing
}

// resolveMissing asks the resolver for each unmatched field and folds
// the answers into the mapping. An absent resolver or an answer naming
// a nonexistent column is a validation failure.
func resolveMissing(mapping map[string]string, missing, available []string, resolver ColumnResolver) error {
	for _, field := range missing {
		if resolver == nil {
			return &core.ValidationError{Reason: fmt.Sprintf("required column missing: %s", field)}
		}
		name, err := resolver(field, available)
		if err != nil {
			return err
		}
		name = strings.ToLower(strings.TrimSpace(name))
		ok := false
		for _, col := range available {
			if name == col {
				ok = true
				break
			}
		}
		if !ok {
			return &core.ValidationError{Reason: fmt.Sprintf("required column missing: %s", field)}
		}
		mapping[field] = name
	}
	return nil
}
