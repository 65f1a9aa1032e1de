package gateway

// operation describes one gateway route: the fixed upstream path it proxies
// to, which query parameters are required, and the defaults applied to the
// optional ones. Parameters are forwarded verbatim; only presence is checked.
type operation struct {
	name         string
	route        string
	upstreamPath string
	required     []requiredParam
	defaults     []defaultParam
	failureMsg   string
}

type requiredParam struct {
	name    string
	message string
}

type defaultParam struct {
	name  string
	value string
}

const symbolsRequired = "Symbols parameter is required"

var operations = []operation{
	{
		name:         "quotes",
		route:        "/api/market/v2/get-quotes",
		upstreamPath: "/market/v2/get-quotes",
		required:     []requiredParam{{"symbols", symbolsRequired}},
		defaults:     []defaultParam{{"region", "IN"}},
		failureMsg:   "Failed to fetch quotes from Yahoo Finance API",
	},
	{
		name:         "movers",
		route:        "/api/market/v2/get-movers",
		upstreamPath: "/market/v2/get-movers",
		defaults: []defaultParam{
			{"direction", "gainers"},
			{"count", "10"},
			{"region", "IN"},
		},
		failureMsg: "Failed to fetch market movers from Yahoo Finance API",
	},
	{
		name:         "summary",
		route:        "/api/market/v2/get-summary",
		upstreamPath: "/market/v2/get-summary",
		required:     []requiredParam{{"symbols", symbolsRequired}},
		defaults:     []defaultParam{{"region", "IN"}},
		failureMsg:   "Failed to fetch market summary from Yahoo Finance API",
	},
	{
		name:         "tickers-by-type",
		route:        "/api/market/get-tickers-by-quote-type",
		upstreamPath: "/market/get-tickers-by-quote-type",
		defaults: []defaultParam{
			{"quoteType", "EQUITY"},
			{"count", "50"},
			{"region", "IN"},
		},
		failureMsg: "Failed to fetch tickers from Yahoo Finance API",
	},
	{
		name:         "spark",
		route:        "/api/market/get-spark",
		upstreamPath: "/market/get-spark",
		required:     []requiredParam{{"symbols", symbolsRequired}},
		defaults: []defaultParam{
			{"range", "1d"},
			{"region", "IN"},
		},
		failureMsg: "Failed to fetch spark data from Yahoo Finance API",
	},
	{
		name:         "earnings",
		route:        "/api/market/get-earnings",
		upstreamPath: "/market/get-earnings",
		required:     []requiredParam{{"symbol", "Symbol parameter is required"}},
		defaults: []defaultParam{
			{"count", "4"},
			{"region", "IN"},
		},
		failureMsg: "Failed to fetch earnings data from Yahoo Finance API",
	},
	{
		name:         "trending",
		route:        "/api/market/get-trending-tickers",
		upstreamPath: "/market/get-trending-tickers",
		defaults: []defaultParam{
			{"count", "20"},
			{"region", "IN"},
		},
		failureMsg: "Failed to fetch trending tickers from Yahoo Finance API",
	},
	{
		name:         "popular-watchlists",
		route:        "/api/market/get-popular-watchlists",
		upstreamPath: "/market/get-popular-watchlists",
		defaults: []defaultParam{
			{"category", "all"},
			{"count", "10"},
			{"region", "IN"},
		},
		failureMsg: "Failed to fetch popular watchlists from Yahoo Finance API",
	},
	{
		name:         "watchlist-detail",
		route:        "/api/market/get-watchlist-detail",
		upstreamPath: "/market/get-watchlist-detail",
		required:     []requiredParam{{"watchlistId", "WatchlistId parameter is required"}},
		defaults:     []defaultParam{{"region", "IN"}},
		failureMsg:   "Failed to fetch watchlist detail from Yahoo Finance API",
	},
	{
		name:         "watchlist-performance",
		route:        "/api/market/get-watchlist-performance",
		upstreamPath: "/market/get-watchlist-performance",
		required:     []requiredParam{{"watchlistId", "WatchlistId parameter is required"}},
		defaults: []defaultParam{
			{"period", "1mo"},
			{"region", "IN"},
		},
		failureMsg: "Failed to fetch watchlist performance from Yahoo Finance API",
	},
}
