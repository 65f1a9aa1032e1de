package dashboard

import (
	"context"
	"strings"
	"sync"

	"marketdash/internal/marketdata"
)

// Mover directions recognized by the provider.
const (
	DirectionGainers = "gainers"
	DirectionLosers  = "losers"
	DirectionActives = "actives"
)

const defaultMoversCount = "10"

// MoversView is one mover table (gainers, losers or actives). The movers
// endpoint returns symbols only, so each refresh chains a second quotes call
// for the extracted symbol list. The chain is strictly sequential; an empty
// symbol list short-circuits to an empty table without the second call, and
// a follow-up failure degrades to an empty table rather than an error.
type MoversView struct {
	client    *Client
	direction string

	mu      sync.Mutex
	gen     uint64
	movers  []marketdata.Quote
	loading bool
	err     string
}

// NewMoversView creates a mover table for one direction.
func NewMoversView(client *Client, direction string) *MoversView {
	return &MoversView{client: client, direction: direction}
}

// Direction returns the table's mover direction.
func (v *MoversView) Direction() string {
	return v.direction
}

// Refresh fetches the mover symbol list and resolves it into full quotes.
func (v *MoversView) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	raw, err := v.client.Movers(ctx, v.direction, defaultMoversCount, defaultRegion)
	if err != nil {
		v.fail(gen, moversFailMsg)
		return
	}

	list, err := marketdata.ParseMovers(raw)
	if err != nil {
		v.fail(gen, moversFailMsg)
		return
	}
	if list == nil {
		// The movers envelope itself was absent.
		v.apply(gen, nil, "No data available")
		return
	}

	quotes := v.fetchQuotesForSymbols(ctx, list.Symbols)
	v.apply(gen, quotes, "")
}

// fetchQuotesForSymbols issues the follow-up quotes call. An empty symbol
// list skips the call entirely; any failure yields an empty result.
func (v *MoversView) fetchQuotesForSymbols(ctx context.Context, symbols []string) []marketdata.Quote {
	if len(symbols) == 0 {
		return nil
	}

	raw, err := v.client.Quotes(ctx, strings.Join(symbols, ","), defaultRegion)
	if err != nil {
		return nil
	}
	quotes, err := marketdata.ParseQuotes(raw)
	if err != nil {
		return nil
	}
	return quotes
}

// Snapshot returns the current display records, loading flag and error.
func (v *MoversView) Snapshot() ([]marketdata.Quote, bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	movers := make([]marketdata.Quote, len(v.movers))
	copy(movers, v.movers)
	return movers, v.loading, v.err
}

func (v *MoversView) apply(gen uint64, movers []marketdata.Quote, errMsg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.movers = movers
	v.loading = false
	v.err = errMsg
}

func (v *MoversView) fail(gen uint64, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.loading = false
	v.err = msg
}
