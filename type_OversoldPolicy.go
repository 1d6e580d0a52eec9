package tomtax

import "fmt"

// OversoldPolicy defines how the matcher handles a sell that exceeds the
// cumulative open buy quantity for its instrument.
type OversoldPolicy int

const (
	// Truncate silently drops the unmatched residual of an oversold sell.
	// This matches the historical behavior of the tool.
	Truncate OversoldPolicy = iota
	// Strict fails the whole report when a sell cannot be fully matched.
	Strict
)

func (p OversoldPolicy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseOversoldPolicy parses a string into an OversoldPolicy.
func ParseOversoldPolicy(s string) (OversoldPolicy, error) {
	switch s {
	case "truncate":
		return Truncate, nil
	case "strict":
		return Strict, nil
	default:
		return 0, fmt.Errorf("unknown oversold policy: %q", s)
	}
}
