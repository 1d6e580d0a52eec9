package tomtax

import "github.com/shopspring/decimal"

// Percent is an exact percentage value, so that the share of a lot consumed
// by a match never suffers from binary rounding.
type Percent struct {
	value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// PercentOf returns part/whole expressed as a percentage.
func PercentOf(part, whole Quantity) Percent {
	return Percent{value: part.value.Div(whole.value).Mul(hundred)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) String() string {
	return p.value.Round(2).StringFixed(2) + "%"
}

func (p Percent) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
