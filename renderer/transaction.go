package renderer

import (
	"fmt"
	"strings"

	"github.com/tomtax/tomtax"
)

// TransactionsMarkdown renders the trade list as a markdown table, in the
// order given.
func TransactionsMarkdown(transactions []tomtax.Transaction) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")

	fmt.Fprintln(&b, "| Trade Date | Instrument | Type | Quantity | Price | Amount | AUD Amount |")
	fmt.Fprintln(&b, "|:---|:---:|:---:|---:|---:|---:|---:|")

	for _, tx := range transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.TradeDate,
			tx.Instrument,
			tx.Type,
			tx.Quantity,
			tx.Price,
			tx.Amount(),
			tx.HomeAmount(),
		)
	}

	return b.String()
}
