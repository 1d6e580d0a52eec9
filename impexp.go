package tomtax

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tomtax/tomtax/date"
)

// this file contains functions to handle the trade import/export format.
// It is a plain CSV with a header row, one trade per line, easy to produce
// from any broker export.

// csvHeader is the canonical column set of the trade file.
var csvHeader = []string{
	"trade_id", "trade_date", "instrument_code", "market_code",
	"quantity", "price", "type", "currency", "transaction_fee", "transaction_method",
}

// ImportTransactions reads trades from 'r' in the import/export format.
//
// The format is a CSV file whose header is 'csvHeader'. Quantity, price and
// fee are decimal strings, the date is ISO-8601, the type is BUY or SELL.
// Every row goes through the same validation as NewTransaction.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read trade file header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("trade file header has %d columns, want %d (%v)", len(header), len(csvHeader), csvHeader)
	}

	var transactions []Transaction
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trade file line %d: %w", line, err)
		}
		tx, err := parseTransactionRecord(record)
		if err != nil {
			return nil, fmt.Errorf("trade file line %d: %w", line, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func parseTransactionRecord(record []string) (Transaction, error) {
	on, err := date.Parse(record[1])
	if err != nil {
		return Transaction{}, err
	}
	quantity, err := ParseQuantity(record[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid quantity %q: %w", record[4], err)
	}
	currency := record[7]
	price, err := ParseMoney(record[5], currency)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid price %q: %w", record[5], err)
	}
	fee, err := ParseMoney(record[8], currency)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid fee %q: %w", record[8], err)
	}
	typ, err := ParseTransactionType(record[6])
	if err != nil {
		return Transaction{}, err
	}
	return NewTransaction(record[0], on, record[2], record[3], quantity, price, typ, fee, record[9])
}

// ExportTransactions writes trades to 'w' in the import/export format.
func ExportTransactions(w io.Writer, transactions []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write trade file header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			tx.TradeID,
			tx.TradeDate.String(),
			tx.Instrument,
			tx.Market,
			tx.Quantity.String(),
			tx.Price.Decimal().String(),
			string(tx.Type),
			tx.Currency(),
			tx.Fee.Decimal().String(),
			tx.Method,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write trade %s: %w", tx.TradeID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
