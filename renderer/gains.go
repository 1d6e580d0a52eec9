// Package renderer turns engine results into markdown strings, ready to be
// rendered on the terminal or pasted in a report.
package renderer

import (
	"fmt"
	"strings"

	"github.com/tomtax/tomtax"
)

// GainsMarkdown renders the capital gains report as a markdown table, one
// row per matched (buy lot, sell) pair, ending with the aggregate total.
func GainsMarkdown(report *tomtax.GainsReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Capital Gains Report\n\n")
	fmt.Fprintf(&b, "Oversold policy: %s\n\n", report.Policy)

	fmt.Fprintln(&b, "| Instrument | Buy Date | Sell Date | Quantity | Gain | Partial | Lot Used |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|:---:|---:|")

	for _, row := range report.Rows {
		partial := ""
		if row.Partial {
			partial = "partial"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			row.Instrument,
			row.BuyDate,
			row.SellDate,
			row.Quantity,
			row.Gain.SignedString(),
			partial,
			row.Used,
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | **%s** | | |\n",
		"Total",
		report.Total().SignedString(),
	)

	return b.String()
}
