// Package dashboard holds the view components behind the market dashboard.
// Each view owns one feature area and runs the same cycle: fetch from the
// gateway, normalize through the marketdata parsers, store the display
// records together with a loading flag and an error string.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resty.dev/v3"
)

// One fixed failure message per feature area. Views show these verbatim;
// the underlying error detail stays out of the rendered state.
const (
	quotesFailMsg      = "Failed to fetch quotes"
	moversFailMsg      = "Failed to fetch market movers"
	trendingFailMsg    = "Failed to fetch trending tickers"
	sparkFailMsg       = "Failed to fetch spark data"
	earningsFailMsg    = "Failed to fetch earnings data"
	watchlistsFailMsg  = "Failed to fetch watchlists"
	detailFailMsg      = "Failed to fetch watchlist detail"
	performanceFailMsg = "Failed to fetch watchlist performance"
)

// Client fetches from the same-origin gateway routes.
type Client struct {
	client *resty.Client
}

// NewClient creates a gateway client against the given base URL.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &Client{client: client}
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, failMsg string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", failMsg, err)
	}
	if !resp.IsSuccess() {
		return nil, errors.New(failMsg)
	}
	return json.RawMessage(resp.Bytes()), nil
}

// Quotes fetches full quote records for a comma-separated symbol list.
func (c *Client) Quotes(ctx context.Context, symbols, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/v2/get-quotes", map[string]string{
		"symbols": symbols,
		"region":  region,
	}, quotesFailMsg)
}

// Movers fetches the lightweight mover list for one direction.
func (c *Client) Movers(ctx context.Context, direction, count, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/v2/get-movers", map[string]string{
		"direction": direction,
		"count":     count,
		"region":    region,
	}, moversFailMsg)
}

// Trending fetches the trending-tickers list.
func (c *Client) Trending(ctx context.Context, count, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/get-trending-tickers", map[string]string{
		"count":  count,
		"region": region,
	}, trendingFailMsg)
}

// Spark fetches compact price series for a comma-separated symbol list.
func (c *Client) Spark(ctx context.Context, symbols, rng, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/get-spark", map[string]string{
		"symbols": symbols,
		"range":   rng,
		"region":  region,
	}, sparkFailMsg)
}

// Earnings fetches quarterly earnings for one symbol.
func (c *Client) Earnings(ctx context.Context, symbol, count, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/get-earnings", map[string]string{
		"symbol": symbol,
		"count":  count,
		"region": region,
	}, earningsFailMsg)
}

// PopularWatchlists fetches the popular watchlists for a category.
func (c *Client) PopularWatchlists(ctx context.Context, category, count, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/get-popular-watchlists", map[string]string{
		"category": category,
		"count":    count,
		"region":   region,
	}, watchlistsFailMsg)
}

// WatchlistDetail fetches the holdings of one watchlist.
func (c *Client) WatchlistDetail(ctx context.Context, watchlistID, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/get-watchlist-detail", map[string]string{
		"watchlistId": watchlistID,
		"region":      region,
	}, detailFailMsg)
}

// WatchlistPerformance fetches one watchlist's return over a period.
func (c *Client) WatchlistPerformance(ctx context.Context, watchlistID, period, region string) (json.RawMessage, error) {
	return c.get(ctx, "/api/market/get-watchlist-performance", map[string]string{
		"watchlistId": watchlistID,
		"period":      period,
		"region":      region,
	}, performanceFailMsg)
}
