package dashboard

import (
	"context"
	"sync"

	"marketdash/internal/marketdata"
)

const (
	defaultEarningsSymbol = "RELIANCE.NS"
	defaultEarningsCount  = "4"
)

// EarningsView is the quarterly earnings table for one symbol.
type EarningsView struct {
	client *Client

	mu       sync.Mutex
	gen      uint64
	symbol   string
	count    string
	quarters []marketdata.EarningsQuarter
	loading  bool
	err      string
}

// NewEarningsView creates the earnings view with the default symbol.
func NewEarningsView(client *Client) *EarningsView {
	return &EarningsView{client: client, symbol: defaultEarningsSymbol, count: defaultEarningsCount}
}

// SetSymbol updates the symbol and refetches.
func (v *EarningsView) SetSymbol(ctx context.Context, symbol string) {
	v.mu.Lock()
	v.symbol = symbol
	v.mu.Unlock()
	v.Refresh(ctx)
}

// SetCount updates how many quarters are requested and refetches.
func (v *EarningsView) SetCount(ctx context.Context, count string) {
	v.mu.Lock()
	v.count = count
	v.mu.Unlock()
	v.Refresh(ctx)
}

// Refresh runs one fetch-normalize-store cycle.
func (v *EarningsView) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	symbol := v.symbol
	count := v.count
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	raw, err := v.client.Earnings(ctx, symbol, count, defaultRegion)
	if err != nil {
		v.fail(gen, earningsFailMsg)
		return
	}
	quarters, err := marketdata.ParseEarnings(symbol, raw)
	if err != nil {
		v.fail(gen, earningsFailMsg)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.quarters = quarters
	v.loading = false
}

// Snapshot returns the current quarters, loading flag and error.
func (v *EarningsView) Snapshot() ([]marketdata.EarningsQuarter, bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	quarters := make([]marketdata.EarningsQuarter, len(v.quarters))
	copy(quarters, v.quarters)
	return quarters, v.loading, v.err
}

func (v *EarningsView) fail(gen uint64, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.loading = false
	v.err = msg
}
