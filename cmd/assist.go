package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tomtax/tomtax"
	"github.com/tomtax/tomtax/agent"
	"github.com/tomtax/tomtax/renderer"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	csvFile    string
	ratesFile  string
	splitsFile string
	live       bool
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant about your report"
}
func (*assistCmd) Usage() string {
	return `tt assist -csv <trades.csv> [-rates <f11.csv>] [-splits <splits.jsonl>] [question...]

  Generates the capital gains report and starts an interactive session with
  an AI assistant that can answer questions about it.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Trade file to report on (CSV)")
	f.StringVar(&c.ratesFile, "rates", "exchange_rates.csv", "Historical RBA F11 rates file")
	f.StringVar(&c.splitsFile, "splits", "", "Split schedule file (JSONL), optional")
	f.BoolVar(&c.live, "live", false, "Fetch rates from the RBA instead of the local file")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" {
		fmt.Fprintln(os.Stderr, "-csv flag is required")
		return subcommands.ExitUsageError
	}

	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
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
	report, err := tomtax.NewGainsReport(converted, splits, tomtax.Truncate, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	accountant := agent.NewAccountant(renderer.GainsMarkdown(report))
	a := agent.New(os.Stdout, os.Stdin, accountant)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
