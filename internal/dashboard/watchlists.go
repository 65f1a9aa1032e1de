package dashboard

import (
	"context"
	"sync"

	"marketdash/internal/marketdata"
)

const (
	defaultWatchlistCategory = "all"
	defaultWatchlistCount    = "10"
)

// WatchlistsView is the popular-watchlists grid.
type WatchlistsView struct {
	client *Client

	mu         sync.Mutex
	gen        uint64
	category   string
	count      string
	watchlists []marketdata.Watchlist
	loading    bool
	err        string
}

// NewWatchlistsView creates the watchlists view with the default category.
func NewWatchlistsView(client *Client) *WatchlistsView {
	return &WatchlistsView{
		client:   client,
		category: defaultWatchlistCategory,
		count:    defaultWatchlistCount,
	}
}

// SetCategory updates the category filter and refetches.
func (v *WatchlistsView) SetCategory(ctx context.Context, category string) {
	v.mu.Lock()
	v.category = category
	v.mu.Unlock()
	v.Refresh(ctx)
}

// SetCount updates how many watchlists are requested and refetches.
func (v *WatchlistsView) SetCount(ctx context.Context, count string) {
	v.mu.Lock()
	v.count = count
	v.mu.Unlock()
	v.Refresh(ctx)
}

// Refresh runs one fetch-normalize-store cycle.
func (v *WatchlistsView) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	category := v.category
	count := v.count
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	raw, err := v.client.PopularWatchlists(ctx, category, count, defaultRegion)
	if err != nil {
		v.fail(gen, watchlistsFailMsg)
		return
	}
	watchlists, err := marketdata.ParseWatchlists(raw)
	if err != nil {
		v.fail(gen, watchlistsFailMsg)
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.watchlists = watchlists
	v.loading = false
}

// Snapshot returns the current watchlists, loading flag and error.
func (v *WatchlistsView) Snapshot() ([]marketdata.Watchlist, bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	watchlists := make([]marketdata.Watchlist, len(v.watchlists))
	copy(watchlists, v.watchlists)
	return watchlists, v.loading, v.err
}

func (v *WatchlistsView) fail(gen uint64, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return
	}
	v.loading = false
	v.err = msg
}
