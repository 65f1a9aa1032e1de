package dashboard

import (
	"context"
	"sync"

	"marketdash/internal/marketdata"
)

const (
	defaultSparkSymbols = "RELIANCE.NS,TCS.NS,INFY.NS"
	defaultSparkRange   = "1d"
)

// ChartPoint is one labelled sample of a spark chart.
type ChartPoint struct {
	Label string
	Close float64
}

// SparkView holds the small trend charts for a set of symbols.
type SparkView struct {
	client *Client

	mu      sync.Mutex
	gen     uint64
	symbols string
	rng     string
	series  []marketdata.SparkSeries
	loading bool
	err     string
}

// NewSparkView creates the spark view with the default symbols and range.
func NewSparkView(client *Client) *SparkView {
	return &SparkView{client: client, symbols: defaultSparkSymbols, rng: defaultSparkRange}
}

// SetSymbols updates the symbol list and refetches.
func (v *SparkView) SetSymbols(ctx context.Context, symbols string) {
	v.mu.Lock()
	v.symbols = symbols
	v.mu.Unlock()
	v.Refresh(ctx)
}

// SetRange updates the requested range and refetches.
func (v *SparkView) SetRange(ctx context.Context, rng string) {
	v.mu.Lock()
	v.rng = rng
	v.mu.Unlock()
	v.Refresh(ctx)
}

// Refresh runs one fetch-normalize-store cycle.
func (v *SparkView) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	symbols := v.symbols
	rng := v.rng
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	raw, err := v.client.Spark(ctx, symbols, rng, defaultRegion)
	if err != nil {
		v.fail(gen, sparkFailMsg)
		return
	}
	series, err := marketdata.ParseSpark(raw)
	if err != nil {
		v.fail(gen, sparkFailMsg)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.series = series
	v.loading = false
}

// Snapshot returns the current series, loading flag and error.
func (v *SparkView) Snapshot() ([]marketdata.SparkSeries, bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	series := make([]marketdata.SparkSeries, len(v.series))
	copy(series, v.series)
	return series, v.loading, v.err
}

// Points pairs a series' closes with time labels contextual to the view's
// current range: time-of-day for intraday, calendar dates otherwise.
func (v *SparkView) Points(s marketdata.SparkSeries) []ChartPoint {
	v.mu.Lock()
	rng := v.rng
	v.mu.Unlock()

	n := len(s.Close)
	if len(s.Timestamp) < n {
		n = len(s.Timestamp)
	}

	points := make([]ChartPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, ChartPoint{
			Label: marketdata.TimeLabel(s.Timestamp[i], rng),
			Close: s.Close[i],
		})
	}
	return points
}

func (v *SparkView) fail(gen uint64, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.loading = false
	v.err = msg
}
