package dashboard

import (
	"context"
	"sync"
)

// View is the contract every view component satisfies.
type View interface {
	Refresh(ctx context.Context)
}

// Dashboard composes the view components. It carries no business logic of
// its own: feature behavior lives entirely in the views.
type Dashboard struct {
	Quotes     *QuotesView
	Gainers    *MoversView
	Losers     *MoversView
	Actives    *MoversView
	Trending   *TrendingView
	Spark      *SparkView
	Earnings   *EarningsView
	Watchlists *WatchlistsView
}

// New wires all view components to one gateway client.
func New(client *Client) *Dashboard {
	return &Dashboard{
		Quotes:     NewQuotesView(client),
		Gainers:    NewMoversView(client, DirectionGainers),
		Losers:     NewMoversView(client, DirectionLosers),
		Actives:    NewMoversView(client, DirectionActives),
		Trending:   NewTrendingView(client),
		Spark:      NewSparkView(client),
		Earnings:   NewEarningsView(client),
		Watchlists: NewWatchlistsView(client),
	}
}

// Views returns every view component.
func (d *Dashboard) Views() []View {
	return []View{
		d.Quotes,
		d.Gainers,
		d.Losers,
		d.Actives,
		d.Trending,
		d.Spark,
		d.Earnings,
		d.Watchlists,
	}
}

// RefreshAll refreshes every view concurrently and waits for all of them.
// Each view tracks its own loading flag and error; a failing view never
// affects its neighbours.
func (d *Dashboard) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, view := range d.Views() {
		wg.Add(1)
		go func(v View) {
			defer wg.Done()
			v.Refresh(ctx)
		}(view)
	}
	wg.Wait()
}
