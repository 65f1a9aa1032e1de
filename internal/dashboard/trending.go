package dashboard

import (
	"context"
	"sync"

	"marketdash/internal/marketdata"
)

const defaultTrendingCount = "20"

// TrendingView is the trending-tickers table.
type TrendingView struct {
	client *Client

	mu      sync.Mutex
	gen     uint64
	count   string
	tickers []marketdata.Quote
	loading bool
	err     string
}

// NewTrendingView creates the trending view with the default count.
func NewTrendingView(client *Client) *TrendingView {
	return &TrendingView{client: client, count: defaultTrendingCount}
}

// SetCount updates how many tickers are requested and refetches.
func (v *TrendingView) SetCount(ctx context.Context, count string) {
	v.mu.Lock()
	v.count = count
	v.mu.Unlock()
	v.Refresh(ctx)
}

// Refresh runs one fetch-normalize-store cycle.
func (v *TrendingView) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	count := v.count
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	raw, err := v.client.Trending(ctx, count, defaultRegion)
	if err != nil {
		v.fail(gen, trendingFailMsg)
		return
	}
	tickers, err := marketdata.ParseTrending(raw)
	if err != nil {
		v.fail(gen, trendingFailMsg)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.tickers = tickers
	v.loading = false
}

// Snapshot returns the current display records, loading flag and error.
func (v *TrendingView) Snapshot() ([]marketdata.Quote, bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	tickers := make([]marketdata.Quote, len(v.tickers))
	copy(tickers, v.tickers)
	return tickers, v.loading, v.err
}

func (v *TrendingView) fail(gen uint64, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.loading = false
	v.err = msg
}
