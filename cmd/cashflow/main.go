package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cashflow/internal/cli"
	"cashflow/internal/console"
	"cashflow/internal/ledger"
	"cashflow/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger("cashflow", os.Getenv("CASHFLOW_LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	stdin := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, "--- Personal Finance Analyzer ---")
	fmt.Fprintf(out, "Enter the path to your transactions CSV file [%s]: ", cfg.LedgerPath)
	path := cfg.LedgerPath
	if stdin.Scan() {
		if answer := strings.TrimSpace(stdin.Text()); answer != "" {
			path = answer
		}
	}

	loader := ledger.New(logger)
	loader.Resolver = console.ColumnPrompt(stdin, out)

	led, err := loader.Load(path)
	if err != nil {
		// Every downstream computation assumes a validated ledger,
		// so a load failure ends the run before the menu.
		logger.Error("cannot proceed without valid data", "error", err)
		fmt.Fprintf(out, "Error: %v\n", err)
		os.Exit(1)
	}

	session := services.NewSession(led)
	console.NewMenu(stdin, out, session, cfg.CurrencySymbol, cfg.MaxProjectionMonths, logger).Run()
}
