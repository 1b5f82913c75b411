// Package config loads analyzer settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// LedgerPath is the default transactions file offered at startup.
	LedgerPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// MaxProjectionMonths caps the horizon of interactive projections.
	MaxProjectionMonths int

	// CurrencySymbol prefixes money figures in console output.
	CurrencySymbol string
}

func Load() *Config {
	return &Config{
		LedgerPath:          getEnv("CASHFLOW_LEDGER_PATH", "data/transactions.csv"),
		LogLevel:            getEnv("CASHFLOW_LOG_LEVEL", "info"),
		MaxProjectionMonths: getEnvInt("CASHFLOW_MAX_PROJECTION_MONTHS", 120),
		CurrencySymbol:      getEnv("CASHFLOW_CURRENCY_SYMBOL", "$"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.LedgerPath) == "" {
		problems = append(problems, "ledger path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.MaxProjectionMonths < 1 || c.MaxProjectionMonths > 600 {
		problems = append(problems, fmt.Sprintf("invalid projection cap %d: must be between 1 and 600", c.MaxProjectionMonths))
	}

	if c.CurrencySymbol == "" {
		problems = append(problems, "currency symbol cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
