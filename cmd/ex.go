package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tomtax/tomtax/date"
	"github.com/tomtax/tomtax/rba"
)

// exCmd holds the flags for the 'ex' subcommand.
type exCmd struct {
	currency  string
	day       string
	ratesFile string
	live      bool
}

func (*exCmd) Name() string     { return "ex" }
func (*exCmd) Synopsis() string { return "exchange rate lookup for a currency and date" }
func (*exCmd) Usage() string {
	return `tt ex -c <currency> [-d <date>] [-rates <f11.csv>] [-live]

  Looks up how many units of a currency one Australian dollar bought on a
  given date (nearest business day). With -live the latest quote is fetched
  instead of the historical table.
`
}

func (c *exCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "The currency to get the exchange rate for")
	f.StringVar(&c.day, "d", date.Today().String(), "The date to get the exchange rate for")
	f.StringVar(&c.ratesFile, "rates", "exchange_rates.csv", "Historical RBA F11 rates file")
	f.BoolVar(&c.live, "live", false, "Fetch the latest quote instead of the historical table")
}

func (c *exCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.currency == "" {
		fmt.Fprintln(os.Stderr, "-c flag is required")
		return subcommands.ExitUsageError
	}
	currency := strings.ToUpper(c.currency)

	if c.live {
		rate, err := rba.Latest(nil, currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching live rate: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("$1AUD = $%s%s now\n", rate, currency)
		return subcommands.ExitSuccess
	}

	on, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, err := loadRates(c.ratesFile, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}

	rate, used, err := table.Rate(currency, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up rate: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("$1AUD = $%s%s on %s\n", rate, currency, used)
	return subcommands.ExitSuccess
}
