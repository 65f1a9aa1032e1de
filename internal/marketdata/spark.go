package marketdata

import (
	"encoding/json"
	"sort"
	"time"
)

// SparkSeries is the flattened projection of one symbol's entry in a spark
// response. Upstream keys the payload by symbol; the symbol is carried as an
// explicit field here.
type SparkSeries struct {
	Symbol             string    `json:"symbol"`
	Timestamp          []int64   `json:"timestamp"`
	Close              []float64 `json:"close"`
	PreviousClose      float64   `json:"previousClose"`
	ChartPreviousClose float64   `json:"chartPreviousClose"`
	Start              int64     `json:"start"`
	End                int64     `json:"end"`
	DataGranularity    int       `json:"dataGranularity"`
}

// PriceChangePercent is the percent change from the first close to the last,
// or 0 when fewer than two closes exist. The result may be non-finite when the
// first close is zero; FormatPercent renders that as "N/A".
func (s SparkSeries) PriceChangePercent() float64 {
	if len(s.Close) < 2 {
		return 0
	}
	first := s.Close[0]
	last := s.Close[len(s.Close)-1]
	return (last - first) / first * 100
}

// ParseSpark flattens the symbol-keyed spark response into records ordered
// by symbol. Entries whose value is not an object are skipped.
func ParseSpark(raw json.RawMessage) ([]SparkSeries, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}

	var bySymbol map[string]json.RawMessage
	if err := json.Unmarshal(raw, &bySymbol); err != nil {
		return nil, nil
	}

	symbols := make([]string, 0, len(bySymbol))
	for symbol := range bySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var series []SparkSeries
	for _, symbol := range symbols {
		var s SparkSeries
		if err := json.Unmarshal(bySymbol[symbol], &s); err != nil {
			continue
		}
		s.Symbol = symbol
		series = append(series, s)
	}
	return series, nil
}

// TimeLabel converts a unix-second timestamp into a label contextual to the
// requested range: intraday granularity shows time-of-day, multi-day ranges
// show calendar dates.
func TimeLabel(ts int64, rng string) string {
	t := time.Unix(ts, 0).UTC()
	switch rng {
	case "1d":
		return t.Format("15:04")
	default:
		return t.Format("Jan 2")
	}
}
