package dashboard

import (
	"context"
	"sync"
	"time"

	"marketdash/internal/marketdata"
)

const (
	defaultRegion = "IN"

	// The quotes table refreshes on a fixed wall-clock interval.
	quotesPollInterval = 30 * time.Second

	defaultQuoteSymbols = "RELIANCE.NS,TCS.NS,INFY.NS,HDFCBANK.NS,ICICIBANK.NS"
)

// QuotesView is the live quote table. It refetches on symbol edits, manual
// refresh and a fixed polling interval. Overlapping fetches are allowed;
// each fetch captures a generation at issue time and only applies its result
// if it is still the most recent outstanding request.
type QuotesView struct {
	client *Client

	mu      sync.Mutex
	gen     uint64
	symbols string
	quotes  []marketdata.Quote
	loading bool
	err     string
}

// NewQuotesView creates the quotes view with the default symbol list.
func NewQuotesView(client *Client) *QuotesView {
	return &QuotesView{client: client, symbols: defaultQuoteSymbols}
}

// SetSymbols updates the symbol list and refetches.
func (v *QuotesView) SetSymbols(ctx context.Context, symbols string) {
	v.mu.Lock()
	v.symbols = symbols
	v.mu.Unlock()
	v.Refresh(ctx)
}

// Refresh runs one fetch-normalize-store cycle.
func (v *QuotesView) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	symbols := v.symbols
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	raw, err := v.client.Quotes(ctx, symbols, defaultRegion)
	if err != nil {
		v.fail(gen, quotesFailMsg)
		return
	}
	quotes, err := marketdata.ParseQuotes(raw)
	if err != nil {
		v.fail(gen, quotesFailMsg)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return // superseded by a newer fetch
	}
	v.quotes = quotes
	v.loading = false
}

// Poll refetches every quotesPollInterval until ctx is cancelled. Ticks fire
// independently of prior fetch completion; the generation counter keeps the
// newest fetch authoritative.
func (v *QuotesView) Poll(ctx context.Context) {
	ticker := time.NewTicker(quotesPollInterval)
	defer ticker.Stop()

	v.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go v.Refresh(ctx)
		}
	}
}

// Snapshot returns the current display records, loading flag and error.
func (v *QuotesView) Snapshot() ([]marketdata.Quote, bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	quotes := make([]marketdata.Quote, len(v.quotes))
	copy(quotes, v.quotes)
	return quotes, v.loading, v.err
}

func (v *QuotesView) fail(gen uint64, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.loading = false
	v.err = msg
}
