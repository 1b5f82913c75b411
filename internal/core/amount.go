package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw amount cell to a signed decimal.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, a
// leading sign, surrounding whitespace or quotes, and a $ or € currency
// marker. When both separators appear the commas are treated as
// thousands grouping (1,234.56).
//
// Examples:
//
//	ParseAmount("12.34")     -> 12.34
//	ParseAmount("-12,34")    -> -12.34
//	ParseAmount("$1,234.56") -> 1234.56
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Contains(s, ".") {
		// Dot is the decimal point; commas can only be grouping.
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
