package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeGateway serves a canned body per route, enough for every view.
func fakeGateway(t *testing.T) *httptest.Server {
	t.Helper()

	bodies := map[string]string{
		"/api/market/v2/get-quotes":          quotesBody,
		"/api/market/v2/get-movers":          moversBody,
		"/api/market/get-trending-tickers":   `{"finance": {"result": [{"quotes": [{"symbol": "INFY.NS", "regularMarketPrice": 1500}]}]}}`,
		"/api/market/get-spark":              `{"TCS.NS": {"timestamp": [1700000000, 1700000300], "close": [100, 104]}}`,
		"/api/market/get-earnings":           `{"earnings": {"earningsChart": {"quarterly": [{"date": "2024Q2", "estimate": 100, "actual": 110}]}}}`,
		"/api/market/get-popular-watchlists": `{"finance": {"result": [{"id": "w1", "title": "Watchlist One", "quotes": [{"symbol": "TCS.NS"}]}]}}`,
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestDashboard_RefreshAll(t *testing.T) {
	server := fakeGateway(t)
	defer server.Close()

	d := New(NewClient(server.URL))
	d.RefreshAll(context.Background())

	if quotes, loading, errMsg := d.Quotes.Snapshot(); len(quotes) != 2 || loading || errMsg != "" {
		t.Errorf("quotes view: %d records, loading=%v, err=%q", len(quotes), loading, errMsg)
	}
	if movers, _, errMsg := d.Gainers.Snapshot(); len(movers) != 2 || errMsg != "" {
		t.Errorf("gainers view: %d records, err=%q", len(movers), errMsg)
	}
	if tickers, _, errMsg := d.Trending.Snapshot(); len(tickers) != 1 || errMsg != "" {
		t.Errorf("trending view: %d records, err=%q", len(tickers), errMsg)
	}
	if series, _, errMsg := d.Spark.Snapshot(); len(series) != 1 || errMsg != "" {
		t.Errorf("spark view: %d series, err=%q", len(series), errMsg)
	}
	if quarters, _, errMsg := d.Earnings.Snapshot(); len(quarters) != 1 || errMsg != "" {
		t.Errorf("earnings view: %d quarters, err=%q", len(quarters), errMsg)
	}
	if lists, _, errMsg := d.Watchlists.Snapshot(); len(lists) != 1 || errMsg != "" {
		t.Errorf("watchlists view: %d lists, err=%q", len(lists), errMsg)
	}
}

func TestDashboard_FailingViewDoesNotAffectNeighbours(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/market/get-trending-tickers" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(quotesBody))
	}))
	defer server.Close()

	d := New(NewClient(server.URL))
	d.Quotes.Refresh(context.Background())
	d.Trending.Refresh(context.Background())

	if _, _, errMsg := d.Trending.Snapshot(); errMsg == "" {
		t.Error("trending view err empty, want failure message")
	}
	if _, _, errMsg := d.Quotes.Snapshot(); errMsg != "" {
		t.Errorf("quotes view err = %q, want empty", errMsg)
	}
}

func TestSparkView_Points(t *testing.T) {
	server := fakeGateway(t)
	defer server.Close()

	view := NewSparkView(NewClient(server.URL))
	view.Refresh(context.Background())

	series, _, errMsg := view.Snapshot()
	if errMsg != "" {
		t.Fatalf("err = %q, want empty", errMsg)
	}
	if len(series) != 1 {
		t.Fatalf("len(series) = %d, want 1", len(series))
	}

	points := view.Points(series[0])
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	// Default range is intraday: labels are time-of-day.
	if points[0].Label != "22:13" {
		t.Errorf("points[0].Label = %q, want 22:13", points[0].Label)
	}
	if points[1].Close != 104 {
		t.Errorf("points[1].Close = %v, want 104", points[1].Close)
	}
}

func TestEarningsView_PassesSymbolAndCount(t *testing.T) {
	var gotSymbol, gotCount string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSymbol = r.URL.Query().Get("symbol")
		gotCount = r.URL.Query().Get("count")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	view := NewEarningsView(NewClient(server.URL))
	view.SetCount(context.Background(), "8")

	if gotSymbol != defaultEarningsSymbol {
		t.Errorf("symbol = %q, want %q", gotSymbol, defaultEarningsSymbol)
	}
	if gotCount != "8" {
		t.Errorf("count = %q, want 8", gotCount)
	}

	// Empty earnings envelope is empty data, not an error.
	quarters, _, errMsg := view.Snapshot()
	if errMsg != "" {
		t.Errorf("err = %q, want empty", errMsg)
	}
	if len(quarters) != 0 {
		t.Errorf("len(quarters) = %d, want 0", len(quarters))
	}
}

func TestWatchlistsView_PassesCategory(t *testing.T) {
	var gotCategory string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"finance": {"result": []}}`))
	}))
	defer server.Close()

	view := NewWatchlistsView(NewClient(server.URL))
	view.SetCategory(context.Background(), "technology")

	if gotCategory != "technology" {
		t.Errorf("category = %q, want technology", gotCategory)
	}
}
