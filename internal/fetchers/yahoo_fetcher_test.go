package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"econograph/internal/config"
	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// Three consecutive trading days with a market-open timestamp each;
// the middle close is null.
const testYahooChart = `{
	"chart": {
		"result": [{
			"meta": {"symbol": "AAPL", "shortName": "Apple Inc."},
			"timestamp": [1704202200, 1704288600, 1704375000],
			"indicators": {"quote": [{"close": [185.64, null, 184.25]}]}
		}],
		"error": null
	}
}`

func newYahooTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/AAPL") {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("interval") != "1d" {
			t.Errorf("Expected interval=1d, got %s", r.URL.Query().Get("interval"))
		}
		if r.URL.Query().Get("period1") == "" || r.URL.Query().Get("period2") == "" {
			t.Error("Expected period1 and period2 query params")
		}
		w.Write([]byte(testYahooChart))
	}))
}

func TestFetchYahoo(t *testing.T) {
	server := newYahooTestServer(t)
	defer server.Close()

	fetcher := NewDataFetcher(&config.Config{YahooBaseURL: server.URL})

	ds, err := fetcher.FetchSeries(context.Background(), models.SeriesRequest{
		Source:   models.SourceYahoo,
		SeriesID: "aapl",
	})
	if err != nil {
		t.Fatalf("FetchSeries failed: %v", err)
	}

	if ds.Label != "Apple Inc." {
		t.Errorf("Expected label from shortName, got %q", ds.Label)
	}
	if ds.Metadata == nil || ds.Metadata.Source != "Yahoo Finance" {
		t.Errorf("Expected Yahoo Finance metadata, got %+v", ds.Metadata)
	}
	if len(ds.Data) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(ds.Data))
	}

	// Market-open timestamps collapse to the trading day.
	wantDates := []string{"2024-01-02", "2024-01-03", "2024-01-04"}
	for i, want := range wantDates {
		if got := ds.Data[i].Date.String(); got != want {
			t.Errorf("Point %d: expected date %s, got %s", i, want, got)
		}
	}
	if ds.Data[0].Value == nil || *ds.Data[0].Value != 185.64 {
		t.Errorf("Expected first close 185.64, got %v", ds.Data[0].Value)
	}
	if !timeseries.IsMissing(ds.Data[1].Value) {
		t.Errorf("Expected null close to be absent, got %v", ds.Data[1].Value)
	}
}

func TestFetchYahooUnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"chart":{"result":null,"error":{
			"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer server.Close()

	fetcher := NewDataFetcher(&config.Config{YahooBaseURL: server.URL})
	fetcher.client.SetRetryCount(0)

	_, err := fetcher.FetchSeries(context.Background(), models.SeriesRequest{
		Source:   models.SourceYahoo,
		SeriesID: "NOPE",
	})
	if err == nil {
		t.Fatal("Expected an error for an unknown symbol")
	}
	if !strings.Contains(err.Error(), "delisted") {
		t.Errorf("Expected the endpoint's error description, got %v", err)
	}
}

func TestYahooPeriodRange(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	// Explicit bounds; period2 is exclusive so the end day is included.
	p1, p2, err := yahooPeriodRange(models.SeriesRequest{
		StartDate: "2024-01-02",
		EndDate:   "2024-01-31",
	}, now)
	if err != nil {
		t.Fatalf("yahooPeriodRange failed: %v", err)
	}
	if want := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC).Unix(); p1 != want {
		t.Errorf("Expected period1 %d, got %d", want, p1)
	}
	if want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).Unix(); p2 != want {
		t.Errorf("Expected period2 %d, got %d", want, p2)
	}

	// No bounds: one year back from now.
	p1, p2, err = yahooPeriodRange(models.SeriesRequest{}, now)
	if err != nil {
		t.Fatalf("yahooPeriodRange failed: %v", err)
	}
	if p2 != now.Unix() {
		t.Errorf("Expected period2 = now, got %d", p2)
	}
	if p1 != now.Add(-yahooDefaultLookback).Unix() {
		t.Errorf("Expected one-year lookback, got %d", p1)
	}

	// Bad bounds propagate as errors.
	if _, _, err := yahooPeriodRange(models.SeriesRequest{StartDate: "bogus"}, now); err == nil {
		t.Error("Expected an error for an unparseable start_date")
	}
}

func TestNormalizeYahooTitlePrecedence(t *testing.T) {
	result := &models.YahooChartResult{
		Meta: models.YahooChartMeta{Symbol: "^GSPC"},
	}

	ds := NormalizeYahoo(models.SeriesRequest{SeriesID: "^GSPC"}, result)
	if ds.Label != "^GSPC" {
		t.Errorf("Expected symbol fallback label, got %q", ds.Label)
	}

	result.Meta.LongName = "S&P 500"
	ds = NormalizeYahoo(models.SeriesRequest{SeriesID: "^GSPC"}, result)
	if ds.Label != "S&P 500" {
		t.Errorf("Expected longName label, got %q", ds.Label)
	}

	ds = NormalizeYahoo(models.SeriesRequest{SeriesID: "^GSPC", Label: "Stocks"}, result)
	if ds.Label != "Stocks" {
		t.Errorf("Expected request label to win, got %q", ds.Label)
	}
}
