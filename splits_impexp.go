package tomtax

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ImportSplits reads a split schedule from 'r'.
//
// The format is a JSONL file, where each line is a JSON object with the
// instrument code, the effective date and the ratio, e.g.
//
//	{"instrument": "NVDA", "date": "2023-07-01", "ratio": "4"}
func ImportSplits(r io.Reader) (map[string][]StockSplit, error) {
	type jsplit struct {
		Instrument string `json:"instrument"`
		StockSplit
	}

	splits := make(map[string][]StockSplit)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jsplit
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("cannot parse line for split import format: %q: %w", string(line), err)
		}
		if js.Instrument == "" {
			return nil, fmt.Errorf("split line %q: instrument is missing", string(line))
		}
		if !js.Ratio.IsPositive() {
			return nil, fmt.Errorf("split line %q: ratio must be positive", string(line))
		}
		splits[js.Instrument] = append(splits[js.Instrument], js.StockSplit)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read split file: %w", err)
	}
	return splits, nil
}
