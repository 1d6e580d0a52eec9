// Package rba loads historical AUD exchange rates from the Reserve Bank of
// Australia F11 statistical table, and exposes a nearest-date rate lookup
// used to price foreign currency trades in AUD.
package rba

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tomtax/tomtax/date"
)

// RatesURL is the RBA's published historical exchange rates CSV (table F11).
const RatesURL = "https://www.rba.gov.au/statistics/tables/csv/f11-data.csv"

// The F11 CSV layout: one preamble line, a "Title" header whose columns are
// "A$1=USD" style series names, nine metadata rows (description, frequency,
// units, source, ...), then one row per business day with dates like
// "03-Jan-2023".
const (
	seriesPrefix   = "A$1="
	obsDateFormat  = "02-Jan-2006"
	metadataRows   = 9
	titleColumn    = "Title"
)

// ErrCurrencyNotFound is reported when the table has no series for a currency.
var ErrCurrencyNotFound = errors.New("currency not found in the exchange rate table")

// obs is one daily observation of a rate.
type obs struct {
	Date date.Date
	Rate decimal.Decimal
}

// Table holds the parsed rates, one sorted series of daily observations per
// currency.
type Table struct {
	series map[string][]obs
}

// Currencies returns the sorted list of currencies the table covers.
func (t *Table) Currencies() []string {
	currencies := make([]string, 0, len(t.series))
	for c := range t.series {
		currencies = append(currencies, c)
	}
	slices.Sort(currencies)
	return currencies
}

// Rate returns how many units of 'currency' one Australian dollar buys on
// the observation date nearest to 'on', together with that date. Business
// day gaps (weekends, holidays) resolve to the closest available day; on a
// tie the earlier day wins.
func (t *Table) Rate(currency string, on date.Date) (decimal.Decimal, date.Date, error) {
	series, ok := t.series[strings.ToUpper(currency)]
	if !ok {
		return decimal.Zero, date.Date{}, fmt.Errorf("%q: %w", currency, ErrCurrencyNotFound)
	}

	// First observation not before 'on'.
	i := sort.Search(len(series), func(i int) bool { return !series[i].Date.Before(on) })
	switch {
	case i == 0:
		return series[0].Rate, series[0].Date, nil
	case i == len(series):
		last := series[len(series)-1]
		return last.Rate, last.Date, nil
	}
	before, after := series[i-1], series[i]
	if on.Sub(before.Date) <= after.Date.Sub(on) {
		return before.Rate, before.Date, nil
	}
	return after.Rate, after.Date, nil
}

// Parse reads an F11 CSV stream into a Table.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the preamble has fewer columns than the data

	// Skip the preamble line.
	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("cannot read rates preamble: %w", err)
	}

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read rates header: %w", err)
	}
	if len(header) == 0 || header[0] != titleColumn {
		return nil, fmt.Errorf("unexpected rates header, want first column %q got %v", titleColumn, header)
	}

	// Map column index to currency; non A$1= series (indexes, TWI) are skipped.
	currencies := make(map[int]string)
	for i, col := range header[1:] {
		if name, ok := strings.CutPrefix(col, seriesPrefix); ok {
			currencies[i+1] = strings.ToUpper(strings.TrimSpace(name))
		}
	}
	if len(currencies) == 0 {
		return nil, fmt.Errorf("no %q series found in rates header", seriesPrefix)
	}

	for range metadataRows {
		if _, err := cr.Read(); err != nil {
			return nil, fmt.Errorf("cannot skip rates metadata: %w", err)
		}
	}

	table := &Table{series: make(map[string][]obs)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read rates row: %w", err)
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		day, err := time.Parse(obsDateFormat, record[0])
		if err != nil {
			// Trailing notes and blank separators are not observations.
			continue
		}
		on := date.New(day.Date())
		for i, currency := range currencies {
			if i >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			rate, err := decimal.NewFromString(value)
			if err != nil {
				// Non numeric cells (market closed markers) are skipped.
				continue
			}
			table.series[currency] = append(table.series[currency], obs{Date: on, Rate: rate})
		}
	}

	for _, series := range table.series {
		slices.SortFunc(series, func(a, b obs) int { return a.Date.Sub(b.Date) })
	}
	return table, nil
}
