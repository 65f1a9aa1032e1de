package marketdata

import "encoding/json"

// Watchlist is the flattened projection of one popular-watchlist entry.
// Follower count, the historical performance window and holding weights are
// not present upstream and are emitted as zero/empty rather than fabricated.
type Watchlist struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	SymbolCount   int                  `json:"symbolCount"`
	FollowerCount int                  `json:"followerCount"`
	Performance   WatchlistPerformance `json:"performance"`
	TopHoldings   []Holding            `json:"topHoldings"`
	CreatedBy     string               `json:"createdBy"`
}

// WatchlistPerformance is the per-window return set a watchlist card shows.
// Not available from the popular-watchlists shape; always zero there.
type WatchlistPerformance struct {
	OneDay     float64 `json:"oneDay"`
	OneWeek    float64 `json:"oneWeek"`
	OneMonth   float64 `json:"oneMonth"`
	ThreeMonth float64 `json:"threeMonth"`
	OneYear    float64 `json:"oneYear"`
}

// Holding is one of a watchlist's top holdings.
type Holding struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

const topHoldingsShown = 3

// ParseWatchlists flattens finance.result into watchlist records.
func ParseWatchlists(raw json.RawMessage) ([]Watchlist, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}
	var env financeEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil
	}

	var lists []Watchlist
	for _, result := range env.Finance.Result {
		category := result.CanonicalName
		if category == "" {
			category = "all"
		}

		wl := Watchlist{
			ID:          result.ID,
			Name:        result.Title,
			Description: result.Description,
			Category:    category,
			SymbolCount: len(result.Quotes),
			CreatedBy:   "Yahoo Finance",
		}

		holdings := result.Quotes
		if len(holdings) > topHoldingsShown {
			holdings = holdings[:topHoldingsShown]
		}
		for _, q := range holdings {
			name := q.ShortName
			if name == "" {
				name = q.LongName
			}
			wl.TopHoldings = append(wl.TopHoldings, Holding{
				Symbol: q.Symbol,
				Name:   name,
				Price:  q.RegularMarketPrice,
				Change: q.RegularMarketChangePercent,
			})
		}

		lists = append(lists, wl)
	}
	return lists, nil
}
