// Package marketdata defines one strict schema type per upstream response
// shape and a pure parse function for each operation. The provider's payloads
// are inconsistent and undocumented; any deviation from the expected nested
// path (missing key, wrong type) is treated as "no data", never as an error.
package marketdata

import (
	"encoding/json"
	"errors"
)

// Quote is the full display record for one instrument, as returned by the
// quotes operation and reused by the movers and trending views.
type Quote struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketChange        float64 `json:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
	RegularMarketVolume        float64 `json:"regularMarketVolume"`
	MarketCap                  float64 `json:"marketCap"`
	RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
	RegularMarketTime          int64   `json:"regularMarketTime"`
	Currency                   string  `json:"currency"`
}

// Name returns the display name, preferring the short name.
func (q Quote) Name() string {
	if q.ShortName != "" {
		return q.ShortName
	}
	if q.LongName != "" {
		return q.LongName
	}
	return "N/A"
}

type quoteEnvelope struct {
	QuoteResponse struct {
		Result []Quote `json:"result"`
	} `json:"quoteResponse"`
}

// financeEnvelope covers the movers, trending and watchlist responses, which
// all nest their payload under finance.result.
type financeEnvelope struct {
	Finance struct {
		Result []financeResult `json:"result"`
	} `json:"finance"`
}

type financeResult struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	CanonicalName string  `json:"canonicalName"`
	Quotes        []Quote `json:"quotes"`
}

var errInvalidJSON = errors.New("response body is not valid JSON")

// ParseQuotes extracts quoteResponse.result. An absent or wrong-typed
// envelope yields empty data; only a body that is not JSON at all is an error.
func ParseQuotes(raw json.RawMessage) ([]Quote, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}
	var env quoteEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil
	}
	return env.QuoteResponse.Result, nil
}

// MoverList is the lightweight movers payload: ticker symbols only. The
// movers endpoint carries no display fields; callers chain a quotes call to
// obtain price, name, volume and market cap.
type MoverList struct {
	Symbols []string
}

// ParseMovers pulls the symbol list out of a movers response
// (finance.result[0].quotes). It returns nil when the envelope is absent,
// which callers distinguish from a present-but-empty symbol list.
func ParseMovers(raw json.RawMessage) (*MoverList, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}
	var env financeEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil
	}
	if len(env.Finance.Result) == 0 {
		return nil, nil
	}

	list := &MoverList{}
	for _, q := range env.Finance.Result[0].Quotes {
		if q.Symbol != "" {
			list.Symbols = append(list.Symbols, q.Symbol)
		}
	}
	return list, nil
}

// ParseTrending extracts the full quote records from a trending-tickers
// response (finance.result[0].quotes).
func ParseTrending(raw json.RawMessage) ([]Quote, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}
	var env financeEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil
	}
	if len(env.Finance.Result) == 0 {
		return nil, nil
	}
	return env.Finance.Result[0].Quotes, nil
}
