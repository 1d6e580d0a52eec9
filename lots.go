package tomtax

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
)

// ErrOversold is reported in Strict mode when a sell cannot be fully matched
// against the open buy lots of its instrument.
var ErrOversold = errors.New("sell exceeds open buy lots")

// lots is the queue of open buy lots for one instrument, oldest first. The
// head lot's quantity is reduced in place as sells consume it; a fully
// consumed lot is removed from the queue. The queue is owned exclusively by
// the matcher for the duration of one report call.
type lots []Transaction

// NewGainsReport matches every sell against the oldest open buy lots of the
// same instrument and returns one report row per match.
//
// The split schedule is applied first (see AdjustForSplits). Instruments are
// processed in ascending lexicographic order; within an instrument, buys and
// sells are processed in trade date order, ties keeping their input order.
// This makes the row ordering deterministic.
//
// debug, when non nil, receives a line per matching step.
func NewGainsReport(transactions []Transaction, splits map[string][]StockSplit, policy OversoldPolicy, debug *log.Logger) (*GainsReport, error) {
	if debug == nil {
		debug = log.New(io.Discard, "", 0)
	}

	adjusted, err := AdjustForSplits(transactions, splits)
	if err != nil {
		return nil, err
	}

	buys := make(map[string]lots)
	sells := make(map[string][]Transaction)
	for _, tx := range adjusted {
		switch tx.Type {
		case Buy:
			buys[tx.Instrument] = append(buys[tx.Instrument], tx)
		case Sell:
			sells[tx.Instrument] = append(sells[tx.Instrument], tx)
		default:
			// NewTransaction rejects any other type; a hand-built value is a bug.
			return nil, fmt.Errorf("transaction %s: invalid type %q", tx.TradeID, tx.Type)
		}
	}

	byDate := func(a, b Transaction) int {
		switch {
		case a.TradeDate.Before(b.TradeDate):
			return -1
		case a.TradeDate.After(b.TradeDate):
			return 1
		default:
			return 0
		}
	}
	for _, queue := range buys {
		slices.SortStableFunc(queue, byDate)
	}
	instruments := make([]string, 0, len(sells))
	for instrument, queue := range sells {
		slices.SortStableFunc(queue, byDate)
		instruments = append(instruments, instrument)
	}
	slices.Sort(instruments)

	report := &GainsReport{HomeCurrency: HomeCurrency, Policy: policy}

	for _, instrument := range instruments {
		queue := buys[instrument]
		for _, sell := range sells[instrument] {
			debug.Printf("processing sell %s", sell)
			remaining := sell.Quantity
			for remaining.IsPositive() && len(queue) > 0 {
				head := queue[0]
				if head.Quantity.LessThanOrEqual(remaining) {
					// The head lot is fully consumed.
					gain, err := CalculateGain(head, sell, head.Quantity)
					if err != nil {
						return nil, err
					}
					report.Rows = append(report.Rows, ReportRow{
						Instrument: instrument,
						BuyDate:    head.TradeDate,
						SellDate:   sell.TradeDate,
						Quantity:   head.Quantity,
						Gain:       gain,
						Partial:    false,
						Used:       PercentOf(head.Quantity, head.Quantity),
					})
					remaining = remaining.Sub(head.Quantity)
					queue = queue[1:]
					debug.Printf("consumed entire lot %s, gain %s, remaining %s", head, gain, remaining)
				} else {
					// The head lot is only partially consumed: it stays at the
					// head of the queue with its quantity reduced.
					gain, err := CalculateGain(head, sell, remaining)
					if err != nil {
						return nil, err
					}
					used := PercentOf(remaining, head.Quantity)
					report.Rows = append(report.Rows, ReportRow{
						Instrument: instrument,
						BuyDate:    head.TradeDate,
						SellDate:   sell.TradeDate,
						Quantity:   remaining,
						Gain:       gain,
						Partial:    true,
						Used:       used,
					})
					queue[0].Quantity = head.Quantity.Sub(remaining)
					debug.Printf("used %s of lot %s, gain %s", used, head, gain)
					remaining = Q(0)
				}
			}
			if remaining.IsPositive() {
				if policy == Strict {
					return nil, fmt.Errorf("instrument %s: sell %s on %s leaves %s unmatched: %w",
						instrument, sell.TradeID, sell.TradeDate, remaining, ErrOversold)
				}
				debug.Printf("instrument %s: dropping unmatched quantity %s of sell %s", instrument, remaining, sell.TradeID)
			}
		}
	}

	return report, nil
}
