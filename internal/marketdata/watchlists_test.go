package marketdata

import (
	"encoding/json"
	"testing"
)

func TestParseWatchlists(t *testing.T) {
	raw := json.RawMessage(`{
		"finance": {
			"result": [
				{
					"id": "tech-titans",
					"title": "Tech Titans",
					"description": "Large cap technology",
					"canonicalName": "technology",
					"quotes": [
						{"symbol": "TCS.NS", "shortName": "TCS", "regularMarketPrice": 4100, "regularMarketChangePercent": 1.2},
						{"symbol": "INFY.NS", "longName": "Infosys Limited", "regularMarketPrice": 1500, "regularMarketChangePercent": -0.4},
						{"symbol": "WIPRO.NS", "regularMarketPrice": 420, "regularMarketChangePercent": 0.1},
						{"symbol": "HCLTECH.NS", "regularMarketPrice": 1300, "regularMarketChangePercent": 0.9}
					]
				},
				{
					"id": "empty-list",
					"title": "Empty"
				}
			]
		}
	}`)

	lists, err := ParseWatchlists(raw)
	if err != nil {
		t.Fatalf("ParseWatchlists() returned unexpected error: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("len(lists) = %d, want 2", len(lists))
	}

	wl := lists[0]
	if wl.ID != "tech-titans" || wl.Name != "Tech Titans" {
		t.Errorf("id/name = %q/%q, want tech-titans/Tech Titans", wl.ID, wl.Name)
	}
	if wl.Category != "technology" {
		t.Errorf("Category = %q, want technology", wl.Category)
	}
	if wl.SymbolCount != 4 {
		t.Errorf("SymbolCount = %d, want 4", wl.SymbolCount)
	}
	if len(wl.TopHoldings) != 3 {
		t.Fatalf("len(TopHoldings) = %d, want 3", len(wl.TopHoldings))
	}
	if wl.TopHoldings[1].Name != "Infosys Limited" {
		t.Errorf("TopHoldings[1].Name = %q, want long name fallback", wl.TopHoldings[1].Name)
	}

	// Synthetic fields not present upstream stay zero/empty.
	if wl.FollowerCount != 0 {
		t.Errorf("FollowerCount = %d, want 0", wl.FollowerCount)
	}
	if wl.Performance != (WatchlistPerformance{}) {
		t.Errorf("Performance = %+v, want zero value", wl.Performance)
	}
	for i, h := range wl.TopHoldings {
		if h.Weight != 0 {
			t.Errorf("TopHoldings[%d].Weight = %v, want 0", i, h.Weight)
		}
	}

	second := lists[1]
	if second.Category != "all" {
		t.Errorf("Category = %q, want fallback all", second.Category)
	}
	if second.SymbolCount != 0 || len(second.TopHoldings) != 0 {
		t.Errorf("empty watchlist holdings = %d/%d, want 0/0", second.SymbolCount, len(second.TopHoldings))
	}
}

func TestParseWatchlists_ShapeDeviationIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"empty result", `{"finance": {"result": []}}`},
		{"wrong type", `{"finance": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lists, err := ParseWatchlists(json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("ParseWatchlists() returned unexpected error: %v", err)
			}
			if len(lists) != 0 {
				t.Errorf("len(lists) = %d, want 0", len(lists))
			}
		})
	}
}
