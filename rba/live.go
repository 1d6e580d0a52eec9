package rba

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// The F11 table lags by a business day; for an up to the minute quote we
// query an open JSON rates API instead.
const liveURL = "https://open.er-api.com/v6/latest/AUD"

// Latest returns the most recent A$1=CCY quote from the live source.
func Latest(client *http.Client, currency string) (decimal.Decimal, error) {
	if client == nil {
		client = new(http.Client)
	}
	content, err := wget(client, liveURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot fetch live rates: %w", err)
	}

	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse live rates: %w", err)
	}

	path := fmt.Sprintf("$.rates.%s", strings.ToUpper(currency))
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", currency, ErrCurrencyNotFound)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("live rate for %q: %q is not a number: %v", currency, path, jval)
	}
	return decimal.NewFromFloat(val), nil
}
