package tomtax

import (
	"testing"

	"github.com/tomtax/tomtax/date"
)

// AUD is a helper for test to create home currency money from const
func AUD(v float64) Money { return M(v, "AUD") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a short parse helper for literal dates in fixtures.
func day(s string) date.Date { return date.MustParse(s) }

// buildTx creates a converted transaction the way the importer and the
// conversion pass would, failing the test on invalid fixtures.
func buildTx(t *testing.T, id, on, instrument string, quantity float64, price Money, typ TransactionType, homePrice float64) Transaction {
	t.Helper()
	tx, err := NewTransaction(id, day(on), instrument, "NASDAQ", Q(quantity), price, typ, M(0, price.Currency()), "MARKET")
	if err != nil {
		t.Fatalf("NewTransaction(%s) error = %v", id, err)
	}
	tx.HomePrice = AUD(homePrice)
	return tx
}

// sampleTransactions mirrors the canonical NVDA/NET fixture: a 10 unit NVDA
// buy, a 5 unit NVDA sell, and an unrelated NET buy.
func sampleTransactions(t *testing.T) []Transaction {
	t.Helper()
	return []Transaction{
		buildTx(t, "1", "2023-01-01", "NVDA", 10, USD(100), Buy, 150),
		buildTx(t, "2", "2023-06-01", "NVDA", 5, USD(200), Sell, 300),
		buildTx(t, "3", "2023-08-01", "NET", 1, USD(100), Buy, 200),
	}
}

func sampleSplits() map[string][]StockSplit {
	return map[string][]StockSplit{
		"NVDA": {{Date: day("2023-07-01"), Ratio: Q(4)}},
	}
}
