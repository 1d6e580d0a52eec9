package tomtax

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tomtax/tomtax/date"
)

// RateSource is a currency conversion lookup. Rate returns how many units of
// 'currency' one home currency unit buys on the date nearest 'on', together
// with the date of the observation actually used.
type RateSource interface {
	Rate(currency string, on date.Date) (decimal.Decimal, date.Date, error)
}

// Convert returns a new slice where every transaction has its home currency
// price populated from 'rates'. Rates are quoted home-to-foreign (A$1=CCY),
// so the home price is the trade price divided by the rate. Trades already
// denominated in the home currency keep their price as is.
//
// This is the only time a transaction's home price is ever set; the matcher
// treats transactions as read-only afterwards.
func Convert(transactions []Transaction, rates RateSource) ([]Transaction, error) {
	converted := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Currency() == HomeCurrency {
			tx.HomePrice = M(tx.Price.Decimal(), HomeCurrency)
			converted = append(converted, tx)
			continue
		}
		rate, _, err := rates.Rate(tx.Currency(), tx.TradeDate)
		if err != nil {
			return nil, fmt.Errorf("converting transaction %s: %w", tx.TradeID, err)
		}
		if rate.IsZero() {
			return nil, fmt.Errorf("converting transaction %s: zero rate for %s on %s", tx.TradeID, tx.Currency(), tx.TradeDate)
		}
		tx.HomePrice = tx.Price.DivRate(rate, HomeCurrency)
		converted = append(converted, tx)
	}
	return converted, nil
}
