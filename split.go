package tomtax

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tomtax/tomtax/date"
)

// StockSplit represents a stock split event. A split's ratio multiplies the
// quantity and divides the price of any transaction dated strictly before
// its effective date.
type StockSplit struct {
	Date  date.Date `json:"date"`
	Ratio Quantity  `json:"ratio"` // e.g. 4 for a 4-for-1 split
}

// AdjustForSplits rescales every transaction by the cumulative ratio of all
// splits for its instrument whose effective date is strictly after the trade
// date. It returns a new slice of the same length and order; transactions
// with no qualifying split pass through unchanged.
func AdjustForSplits(transactions []Transaction, splits map[string][]StockSplit) ([]Transaction, error) {
	adjusted := make([]Transaction, 0, len(transactions))
	one := Q(decimal.New(1, 0))
	for _, tx := range transactions {
		ratio := one
		for _, split := range splits[tx.Instrument] {
			if !split.Ratio.IsPositive() {
				return nil, fmt.Errorf("split for %s on %s: ratio must be positive, got %s", tx.Instrument, split.Date, split.Ratio)
			}
			// Transactions dated on or after the effective date are never
			// adjusted by that split.
			if split.Date.After(tx.TradeDate) {
				ratio = ratio.Mul(split.Ratio)
			}
		}
		if ratio.Equal(one) {
			adjusted = append(adjusted, tx)
			continue
		}
		a, err := tx.SplitAdjust(ratio)
		if err != nil {
			return nil, err
		}
		adjusted = append(adjusted, a)
	}
	return adjusted, nil
}
