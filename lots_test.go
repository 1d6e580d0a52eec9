package tomtax

import (
	"bytes"
	"errors"
	"log"
	"testing"
)

func TestNewGainsReport_PartialLot(t *testing.T) {
	report, err := NewGainsReport(sampleTransactions(t), nil, Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("NewGainsReport() returned %d rows, want 1", len(report.Rows))
	}
	row := report.Rows[0]
	if row.Instrument != "NVDA" {
		t.Errorf("instrument = %s, want NVDA", row.Instrument)
	}
	if row.BuyDate != day("2023-01-01") || row.SellDate != day("2023-06-01") {
		t.Errorf("dates = %s/%s, want 2023-01-01/2023-06-01", row.BuyDate, row.SellDate)
	}
	if !row.Quantity.Equal(Q(5)) {
		t.Errorf("quantity = %s, want 5", row.Quantity)
	}
	// (300 - 150) * 5
	if !row.Gain.Equal(AUD(750)) {
		t.Errorf("gain = %s, want %s", row.Gain, AUD(750))
	}
	if !row.Partial {
		t.Error("partial = false, want true")
	}
	if !row.Used.Equal(PercentOf(Q(1), Q(2))) {
		t.Errorf("used = %s, want 50.00%%", row.Used)
	}
}

// The canonical regression scenario: two AAPL lots, one sell spanning both.
func TestNewGainsReport_SpanningSell(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "AAPL", 10, USD(100), Buy, 150), // home amount 1500
		buildTx(t, "2", "2022-06-01", "AAPL", 5, USD(120), Buy, 180),  // home amount 900
		buildTx(t, "3", "2023-01-01", "AAPL", 15, USD(200), Sell, 300), // home amount 4500
	}
	report, err := NewGainsReport(transactions, nil, Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("NewGainsReport() returned %d rows, want 2", len(report.Rows))
	}

	row1, row2 := report.Rows[0], report.Rows[1]
	// Row 1: the whole first lot. Proceeds 4500*(10/15)=3000, cost 1500.
	if !row1.Quantity.Equal(Q(10)) || !row1.Gain.Equal(AUD(1500)) || row1.Partial {
		t.Errorf("row1 = %+v, want quantity 10, gain %s, full lot", row1, AUD(1500))
	}
	if row1.BuyDate != day("2022-01-01") {
		t.Errorf("row1 buy date = %s, want the oldest lot", row1.BuyDate)
	}
	// Row 2: the whole second lot. Proceeds 4500*(5/15)=1500, cost 900.
	if !row2.Quantity.Equal(Q(5)) || !row2.Gain.Equal(AUD(600)) || row2.Partial {
		t.Errorf("row2 = %+v, want quantity 5, gain %s, full lot", row2, AUD(600))
	}

	// Total equals sell home amount minus the consumed lots' home amounts.
	if !report.Total().Equal(AUD(4500 - 1500 - 900)) {
		t.Errorf("Total() = %s, want %s", report.Total(), AUD(2100))
	}
}

// FIFO must consume the earliest lot first even when a later lot is cheaper.
func TestNewGainsReport_FIFOOrder(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "AAPL", 10, USD(150), Buy, 200), // expensive, oldest
		buildTx(t, "2", "2022-06-01", "AAPL", 10, USD(80), Buy, 100),  // cheap, newer
		buildTx(t, "3", "2023-01-01", "AAPL", 10, USD(250), Sell, 300),
	}
	report, err := NewGainsReport(transactions, nil, Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("NewGainsReport() returned %d rows, want 1", len(report.Rows))
	}
	row := report.Rows[0]
	if row.BuyDate != day("2022-01-01") {
		t.Errorf("matched lot dated %s, want the oldest 2022-01-01", row.BuyDate)
	}
	// (300 - 200) * 10, not (300 - 100) * 10.
	if !row.Gain.Equal(AUD(1000)) {
		t.Errorf("gain = %s, want %s", row.Gain, AUD(1000))
	}
}

// A partially consumed lot stays at the head with its quantity reduced.
func TestNewGainsReport_PartialThenRemainder(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "AAPL", 10, USD(100), Buy, 150),
		buildTx(t, "2", "2022-06-01", "AAPL", 5, USD(200), Sell, 300),
		buildTx(t, "3", "2022-09-01", "AAPL", 5, USD(200), Sell, 300),
	}
	report, err := NewGainsReport(transactions, nil, Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("NewGainsReport() returned %d rows, want 2", len(report.Rows))
	}

	first := report.Rows[0]
	if !first.Partial || !first.Used.Equal(PercentOf(Q(1), Q(2))) {
		t.Errorf("first match = %+v, want partial with 50%% used", first)
	}
	// The second sell consumes the remaining 5 units entirely; the
	// percentage is relative to the reduced lot.
	second := report.Rows[1]
	if second.Partial || !second.Used.Equal(PercentOf(Q(1), Q(1))) {
		t.Errorf("second match = %+v, want full consumption of the remainder", second)
	}
	if !second.Quantity.Equal(Q(5)) || !second.Gain.Equal(AUD(750)) {
		t.Errorf("second match = %+v, want quantity 5 gain %s", second, AUD(750))
	}
}

func TestNewGainsReport_OversoldTruncate(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "AAPL", 5, USD(100), Buy, 150),
		buildTx(t, "2", "2022-06-01", "AAPL", 10, USD(200), Sell, 300),
	}
	var buf bytes.Buffer
	debug := log.New(&buf, "", 0)
	report, err := NewGainsReport(transactions, nil, Truncate, debug)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	// The matched half produces its row, the residual is dropped.
	if len(report.Rows) != 1 {
		t.Fatalf("NewGainsReport() returned %d rows, want 1", len(report.Rows))
	}
	if !report.Rows[0].Quantity.Equal(Q(5)) {
		t.Errorf("matched quantity = %s, want 5", report.Rows[0].Quantity)
	}
	if !bytes.Contains(buf.Bytes(), []byte("unmatched quantity 5")) {
		t.Errorf("debug log does not mention the dropped quantity: %q", buf.String())
	}
}

func TestNewGainsReport_OversoldStrict(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "AAPL", 5, USD(100), Buy, 150),
		buildTx(t, "2", "2022-06-01", "AAPL", 10, USD(200), Sell, 300),
	}
	_, err := NewGainsReport(transactions, nil, Strict, nil)
	if err == nil {
		t.Fatal("NewGainsReport() did not fail in strict mode")
	}
	if !errors.Is(err, ErrOversold) {
		t.Errorf("error = %v, want ErrOversold", err)
	}
}

// Report rows are ordered by ascending instrument code, regardless of the
// input order.
func TestNewGainsReport_InstrumentOrdering(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "ZZZ", 1, USD(100), Buy, 150),
		buildTx(t, "2", "2022-06-01", "ZZZ", 1, USD(200), Sell, 300),
		buildTx(t, "3", "2022-01-01", "AAA", 1, USD(100), Buy, 150),
		buildTx(t, "4", "2022-06-01", "AAA", 1, USD(200), Sell, 300),
	}
	report, err := NewGainsReport(transactions, nil, Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("NewGainsReport() returned %d rows, want 2", len(report.Rows))
	}
	if report.Rows[0].Instrument != "AAA" || report.Rows[1].Instrument != "ZZZ" {
		t.Errorf("rows ordered %s, %s; want AAA, ZZZ", report.Rows[0].Instrument, report.Rows[1].Instrument)
	}
}

// Lots bought on the same date are consumed in input order.
func TestNewGainsReport_SameDateTieKeepsInputOrder(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "AAPL", 5, USD(100), Buy, 100),
		buildTx(t, "2", "2022-01-01", "AAPL", 5, USD(100), Buy, 200),
		buildTx(t, "3", "2022-06-01", "AAPL", 5, USD(250), Sell, 300),
	}
	report, err := NewGainsReport(transactions, nil, Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("NewGainsReport() returned %d rows, want 1", len(report.Rows))
	}
	// The first-listed lot (home price 100) must be consumed: gain (300-100)*5.
	if !report.Rows[0].Gain.Equal(AUD(1000)) {
		t.Errorf("gain = %s, want %s (first-listed lot consumed)", report.Rows[0].Gain, AUD(1000))
	}
}

// Adjusting both sides of a match by the same split leaves the gain intact.
func TestNewGainsReport_SplitPreservesGain(t *testing.T) {
	report, err := NewGainsReport(sampleTransactions(t), sampleSplits(), Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("NewGainsReport() returned %d rows, want 1", len(report.Rows))
	}
	row := report.Rows[0]
	// Quantities are on post-split scale, the gain is unchanged.
	if !row.Quantity.Equal(Q(20)) {
		t.Errorf("quantity = %s, want 20", row.Quantity)
	}
	if !row.Gain.Equal(AUD(750)) {
		t.Errorf("gain = %s, want %s", row.Gain, AUD(750))
	}
	if !row.Used.Equal(PercentOf(Q(1), Q(2))) {
		t.Errorf("used = %s, want 50.00%%", row.Used)
	}
}

func TestNewGainsReport_NoSells(t *testing.T) {
	transactions := []Transaction{
		buildTx(t, "1", "2022-01-01", "AAPL", 10, USD(100), Buy, 150),
	}
	report, err := NewGainsReport(transactions, nil, Truncate, nil)
	if err != nil {
		t.Fatalf("NewGainsReport() error = %v", err)
	}
	if len(report.Rows) != 0 {
		t.Errorf("NewGainsReport() returned %d rows, want 0", len(report.Rows))
	}
}
