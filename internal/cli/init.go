// Package cli provides common binary bootstrap utilities shared by
// cmd/cashflow and cmd/genledger.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"cashflow/internal/config"
	"cashflow/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger initializes structured logging for a binary and sets it
// as the default logger. An unknown level falls back to info.
func SetupLogger(component, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)

	cfg := log.DefaultConfig()
	cfg.Level = lvl
	cfg.Component = component

	logger := log.New(cfg)
	log.SetDefault(logger)
	if err != nil {
		logger.Warn("unknown log level, using info", "error", err)
	}
	return logger
}
