package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/tomtax/tomtax"
	"github.com/tomtax/tomtax/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	csvFile    string
	ratesFile  string
	splitsFile string
	oversold   string
	live       bool
	verbose    bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "FIFO capital gains report from a trade file" }
func (*reportCmd) Usage() string {
	return `tt report -csv <trades.csv> [-rates <f11.csv>] [-splits <splits.jsonl>] [-oversold <policy>] [-live] [-v]

  Imports trades, converts them to AUD using historical RBA rates, applies
  the split schedule, matches sells against buy lots oldest-first, and
  prints one row per match plus the total realized gain.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Trade file to report on (CSV)")
	f.StringVar(&c.ratesFile, "rates", "exchange_rates.csv", "Historical RBA F11 rates file")
	f.StringVar(&c.splitsFile, "splits", "", "Split schedule file (JSONL), optional")
	f.StringVar(&c.oversold, "oversold", tomtax.Truncate.String(), "Oversold policy (truncate, strict)")
	f.BoolVar(&c.live, "live", false, "Fetch rates from the RBA instead of the local file")
	f.BoolVar(&c.verbose, "v", false, "Log every matching step to stderr")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" {
		fmt.Fprintln(os.Stderr, "-csv flag is required")
		return subcommands.ExitUsageError
	}

	policy, err := tomtax.ParseOversoldPolicy(c.oversold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing oversold policy: %v\n", err)
		return subcommands.ExitUsageError
	}

	transactions, err := loadTransactions(c.csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return subcommands.ExitFailure
	}

	splits, err := loadSplits(c.splitsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading splits: %v\n", err)
		return subcommands.ExitFailure
	}

	rates, err := loadRates(c.ratesFile, c.live)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}

	converted, err := tomtax.Convert(transactions, rates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting trades to %s: %v\n", tomtax.HomeCurrency, err)
		return subcommands.ExitFailure
	}

	var debug *log.Logger
	if c.verbose {
		debug = log.New(os.Stderr, "debug: ", 0)
	}

	report, err := tomtax.NewGainsReport(converted, splits, policy, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GainsMarkdown(report))
	return subcommands.ExitSuccess
}
