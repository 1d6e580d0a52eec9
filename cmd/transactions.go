package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tomtax/tomtax"
	"github.com/tomtax/tomtax/renderer"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	csvFile   string
	ratesFile string
	live      bool
	convert   bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "show the parsed trade file" }
func (*transactionsCmd) Usage() string {
	return `tt transactions -csv <trades.csv> [-convert] [-rates <f11.csv>] [-live]

  Renders the parsed trades as a table. With -convert the AUD amounts are
  filled in from the historical rates.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Trade file to show (CSV)")
	f.StringVar(&c.ratesFile, "rates", "exchange_rates.csv", "Historical RBA F11 rates file")
	f.BoolVar(&c.live, "live", false, "Fetch rates from the RBA instead of the local file")
	f.BoolVar(&c.convert, "convert", false, "Fill in AUD amounts from the rates file")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" {
		fmt.Fprintln(os.Stderr, "-csv flag is required")
		return subcommands.ExitUsageError
	}

	transactions, err := loadTransactions(c.csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.convert {
		rates, err := loadRates(c.ratesFile, c.live)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
			return subcommands.ExitFailure
		}
		transactions, err = tomtax.Convert(transactions, rates)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting trades to %s: %v\n", tomtax.HomeCurrency, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions))
	return subcommands.ExitSuccess
}
