package tomtax

import (
	"fmt"

	"github.com/tomtax/tomtax/date"
)

// HomeCurrency is the reporting currency all gains are expressed in.
const HomeCurrency = "AUD"

// TransactionType is a typed string for the side of a trade.
type TransactionType string

const (
	Buy  TransactionType = "BUY"
	Sell TransactionType = "SELL"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("transaction type must be either %q or %q, got %q", Buy, Sell, s)
	}
}

// Transaction represents a single trade. It is created by the CSV importer,
// gets its home currency price set once by the conversion pass, and is
// read-only afterwards: Partial and SplitAdjust derive new values instead of
// mutating the receiver.
type Transaction struct {
	TradeID    string
	TradeDate  date.Date
	Instrument string
	Market     string
	Quantity   Quantity
	Price      Money // per unit, in the trade currency
	Type       TransactionType
	Fee        Money // absolute, in the trade currency
	Method     string
	HomePrice  Money // per unit, in the home currency; zero until converted
}

// NewTransaction creates a validated Transaction.
func NewTransaction(id string, on date.Date, instrument, market string, quantity Quantity, price Money, typ TransactionType, fee Money, method string) (Transaction, error) {
	if typ != Buy && typ != Sell {
		return Transaction{}, fmt.Errorf("transaction %s: transaction type must be either %q or %q, got %q", id, Buy, Sell, typ)
	}
	if !quantity.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction %s: quantity must be positive, got %s", id, quantity)
	}
	if price.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction %s: price cannot be negative, got %s", id, price)
	}
	if fee.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction %s: fee cannot be negative, got %s", id, fee)
	}
	return Transaction{
		TradeID:    id,
		TradeDate:  on,
		Instrument: instrument,
		Market:     market,
		Quantity:   quantity,
		Price:      price,
		Type:       typ,
		Fee:        fee,
		Method:     method,
		HomePrice:  M(0, HomeCurrency),
	}, nil
}

// Currency returns the trade currency.
func (t Transaction) Currency() string { return t.Price.Currency() }

// Amount returns the total trade amount in the trade currency.
func (t Transaction) Amount() Money { return t.Price.Mul(t.Quantity) }

// HomeAmount returns the total trade amount in the home currency.
func (t Transaction) HomeAmount() Money { return t.HomePrice.Mul(t.Quantity) }

// Partial derives a transaction representing a fraction of this one: same
// per-unit prices, quantity set to 'quantity', fee scaled proportionally.
func (t Transaction) Partial(quantity Quantity) (Transaction, error) {
	if !quantity.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction %s: partial quantity must be positive, got %s", t.TradeID, quantity)
	}
	if quantity.GreaterThan(t.Quantity) {
		return Transaction{}, fmt.Errorf("transaction %s: partial quantity %s exceeds transaction quantity %s", t.TradeID, quantity, t.Quantity)
	}
	p := t
	p.Quantity = quantity
	p.Fee = t.Fee.Mul(quantity).Div(t.Quantity)
	return p, nil
}

// SplitAdjust derives a transaction rescaled onto post-split share counts:
// quantity is multiplied by 'ratio', per-unit prices divided by it. The fee
// is absolute, not per-unit, and is left untouched.
func (t Transaction) SplitAdjust(ratio Quantity) (Transaction, error) {
	if !ratio.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction %s: split ratio must be positive, got %s", t.TradeID, ratio)
	}
	s := t
	s.Quantity = t.Quantity.Mul(ratio)
	s.Price = t.Price.Div(ratio)
	s.HomePrice = t.HomePrice.Div(ratio)
	return s, nil
}

// String renders a compact single line view of the transaction, for debug logs.
func (t Transaction) String() string {
	return fmt.Sprintf("TX<%s %s %s %s @ %s = %s [%s = %s]>",
		t.TradeDate, t.Instrument, t.Type, t.Quantity, t.Price, t.Amount(), t.HomePrice, t.HomeAmount())
}
