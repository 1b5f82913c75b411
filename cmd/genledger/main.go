// genledger writes a synthetic transactions CSV for trying out the
// analyzer against realistic-looking data.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cashflow/internal/cli"
	"cashflow/internal/generator"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger("genledger", os.Getenv("CASHFLOW_LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	var (
		out   = flag.String("out", cfg.LedgerPath, "output CSV path")
		start = flag.String("start", "2021-09-01", "first day of the range (YYYY-MM-DD)")
		end   = flag.String("end", "2025-06-30", "last day of the range (YYYY-MM-DD)")
		seed  = flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	)
	flag.Parse()

	genCfg := generator.DefaultConfig()
	if *seed != 0 {
		genCfg.Seed = *seed
	}
	var err error
	genCfg.Start, err = time.Parse("2006-01-02", *start)
	if err != nil {
		logger.Error("invalid -start", "value", *start, "error", err)
		os.Exit(1)
	}
	genCfg.End, err = time.Parse("2006-01-02", *end)
	if err != nil {
		logger.Error("invalid -end", "value", *end, "error", err)
		os.Exit(1)
	}
	if genCfg.End.Before(genCfg.Start) {
		logger.Error("-end must not be before -start", "start", *start, "end", *end)
		os.Exit(1)
	}

	ledger := generator.Generate(genCfg)

	if dir := filepath.Dir(*out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("cannot create output directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		logger.Error("cannot create output file", "path", *out, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := generator.WriteCSV(f, ledger); err != nil {
		logger.Error("write failed", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("ledger generated", "path", *out, "transactions", len(ledger), "seed", genCfg.Seed)
	fmt.Printf("Generated %d transactions.\nSaved to %s\n", len(ledger), *out)
}
