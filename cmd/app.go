// Package cmd implements the CLI application to compute capital gains.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tomtax/tomtax"
	"github.com/tomtax/tomtax/rba"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "report")
	c.Register(&transactionsCmd{}, "report")

	c.Register(&exCmd{}, "rates")
	c.Register(&fetchCmd{}, "rates")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// loadTransactions reads the trade CSV file.
func loadTransactions(path string) ([]tomtax.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open trade file %q: %w", path, err)
	}
	defer f.Close()
	return tomtax.ImportTransactions(f)
}

// loadSplits reads the split schedule, or returns an empty schedule when no
// file was given.
func loadSplits(path string) (map[string][]tomtax.StockSplit, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open split file %q: %w", path, err)
	}
	defer f.Close()
	return tomtax.ImportSplits(f)
}

// loadRates returns the historical rate table, either from a local file or
// fetched from the RBA through the daily cache.
func loadRates(path string, live bool) (*rba.Table, error) {
	if live || path == "" {
		return rba.Fetch(nil)
	}
	return rba.Load(path)
}
