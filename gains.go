package tomtax

import (
	"fmt"

	"github.com/tomtax/tomtax/date"
)

// CalculateGain computes the realized gain, in the home currency, of matching
// 'matched' units of a sell against a buy lot.
//
// The buy side cost and sell side proceeds are allocated proportionally from
// each transaction's total home amount, rather than recomputed from the unit
// price, so that any rounding carried by the stored amount is preserved
// consistently across partial matches. Transaction fees are not part of the
// formula; they stay on the transactions for consumers with their own fee
// policy.
func CalculateGain(buy, sell Transaction, matched Quantity) (Money, error) {
	if buy.Quantity.IsZero() || sell.Quantity.IsZero() {
		return Money{}, fmt.Errorf("gain %s/%s: cannot allocate against a zero quantity transaction", buy.TradeID, sell.TradeID)
	}
	if !matched.IsPositive() {
		return Money{}, fmt.Errorf("gain %s/%s: matched quantity must be positive, got %s", buy.TradeID, sell.TradeID, matched)
	}
	if matched.GreaterThan(buy.Quantity) || matched.GreaterThan(sell.Quantity) {
		return Money{}, fmt.Errorf("gain %s/%s: matched quantity %s exceeds buy %s or sell %s", buy.TradeID, sell.TradeID, matched, buy.Quantity, sell.Quantity)
	}
	cost := buy.HomeAmount().Mul(matched).Div(buy.Quantity)
	proceeds := sell.HomeAmount().Mul(matched).Div(sell.Quantity)
	return proceeds.Sub(cost), nil
}

// ReportRow is one matched (buy lot, sell) pair in a capital gains report.
type ReportRow struct {
	Instrument string
	BuyDate    date.Date
	SellDate   date.Date
	Quantity   Quantity // matched quantity
	Gain       Money    // realized gain in the home currency, negative for a loss
	Partial    bool     // true when the match consumed only part of the lot
	Used       Percent  // share of the lot consumed by this match
}

// GainsReport contains the results of a capital gains calculation.
type GainsReport struct {
	HomeCurrency string
	Policy       OversoldPolicy
	Rows         []ReportRow
}

// Total returns the aggregate realized gain over all rows.
func (r *GainsReport) Total() Money {
	total := M(0, r.HomeCurrency)
	for _, row := range r.Rows {
		total = total.Add(row.Gain)
	}
	return total
}
