package tomtax

import (
	"testing"
)

func TestNewTransaction_RejectsInvalidType(t *testing.T) {
	_, err := NewTransaction("1", day("2022-01-01"), "AAPL", "NASDAQ", Q(10), USD(100), TransactionType("HOLD"), USD(0), "")
	if err == nil {
		t.Fatal("NewTransaction() accepted an invalid transaction type")
	}
}

func TestNewTransaction_RejectsNonPositiveQuantity(t *testing.T) {
	for _, quantity := range []Quantity{Q(0), Q(-1)} {
		_, err := NewTransaction("1", day("2022-01-01"), "AAPL", "NASDAQ", quantity, USD(100), Buy, USD(0), "")
		if err == nil {
			t.Errorf("NewTransaction() accepted quantity %s", quantity)
		}
	}
}

func TestParseTransactionType(t *testing.T) {
	if _, err := ParseTransactionType("BUY"); err != nil {
		t.Errorf("ParseTransactionType(BUY) error = %v", err)
	}
	if _, err := ParseTransactionType("SELL"); err != nil {
		t.Errorf("ParseTransactionType(SELL) error = %v", err)
	}
	if _, err := ParseTransactionType("buy"); err == nil {
		t.Error("ParseTransactionType(buy) accepted a lowercase type")
	}
}

func TestTransaction_Amounts(t *testing.T) {
	tx := buildTx(t, "1", "2022-01-01", "AAPL", 10, USD(100), Buy, 150)
	if !tx.Amount().Equal(USD(1000)) {
		t.Errorf("Amount() = %s, want %s", tx.Amount(), USD(1000))
	}
	if !tx.HomeAmount().Equal(AUD(1500)) {
		t.Errorf("HomeAmount() = %s, want %s", tx.HomeAmount(), AUD(1500))
	}
}

func TestTransaction_SplitAdjust(t *testing.T) {
	tx, err := NewTransaction("1", day("2022-01-01"), "AAPL", "NASDAQ", Q(10), USD(100), Buy, USD(10), "MARKET")
	if err != nil {
		t.Fatalf("NewTransaction() error = %v", err)
	}
	tx.HomePrice = AUD(150)

	adjusted, err := tx.SplitAdjust(Q(2))
	if err != nil {
		t.Fatalf("SplitAdjust() error = %v", err)
	}
	if !adjusted.Quantity.Equal(Q(20)) {
		t.Errorf("quantity = %s, want 20", adjusted.Quantity)
	}
	if !adjusted.Price.Equal(USD(50)) {
		t.Errorf("price = %s, want %s", adjusted.Price, USD(50))
	}
	if !adjusted.HomePrice.Equal(AUD(75)) {
		t.Errorf("home price = %s, want %s", adjusted.HomePrice, AUD(75))
	}
	// Fees are absolute, never rescaled by a split.
	if !adjusted.Fee.Equal(USD(10)) {
		t.Errorf("fee = %s, want %s", adjusted.Fee, USD(10))
	}
	// The receiver is untouched.
	if !tx.Quantity.Equal(Q(10)) {
		t.Errorf("receiver quantity mutated to %s", tx.Quantity)
	}
}

func TestTransaction_SplitAdjust_RejectsNonPositiveRatio(t *testing.T) {
	tx := buildTx(t, "1", "2022-01-01", "AAPL", 10, USD(100), Buy, 150)
	if _, err := tx.SplitAdjust(Q(0)); err == nil {
		t.Error("SplitAdjust(0) did not fail")
	}
	if _, err := tx.SplitAdjust(Q(-2)); err == nil {
		t.Error("SplitAdjust(-2) did not fail")
	}
}

func TestTransaction_Partial(t *testing.T) {
	tx, err := NewTransaction("1", day("2022-01-01"), "AAPL", "NASDAQ", Q(10), USD(100), Buy, USD(10), "MARKET")
	if err != nil {
		t.Fatalf("NewTransaction() error = %v", err)
	}
	tx.HomePrice = AUD(150)

	partial, err := tx.Partial(Q(4))
	if err != nil {
		t.Fatalf("Partial() error = %v", err)
	}
	if !partial.Quantity.Equal(Q(4)) {
		t.Errorf("quantity = %s, want 4", partial.Quantity)
	}
	// Per-unit prices are unchanged, the fee scales with the fraction taken.
	if !partial.Price.Equal(USD(100)) {
		t.Errorf("price = %s, want %s", partial.Price, USD(100))
	}
	if !partial.HomePrice.Equal(AUD(150)) {
		t.Errorf("home price = %s, want %s", partial.HomePrice, AUD(150))
	}
	if !partial.Fee.Equal(USD(4)) {
		t.Errorf("fee = %s, want %s", partial.Fee, USD(4))
	}
}

func TestTransaction_Partial_Preconditions(t *testing.T) {
	tx := buildTx(t, "1", "2022-01-01", "AAPL", 10, USD(100), Buy, 150)
	if _, err := tx.Partial(Q(0)); err == nil {
		t.Error("Partial(0) did not fail")
	}
	if _, err := tx.Partial(Q(11)); err == nil {
		t.Error("Partial(11) did not fail")
	}
	if _, err := tx.Partial(Q(10)); err != nil {
		t.Errorf("Partial(10) error = %v, want full quantity accepted", err)
	}
}
