package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"econograph/internal/config"
	"econograph/internal/models"
)

func newAlphaVantageTestServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("function") != "TIME_SERIES_DAILY" {
			http.Error(w, "unexpected function", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Meta Data": {
				"2. Symbol": "AAPL",
				"3. Last Refreshed": "2024-03-05"
			},
			"Time Series (Daily)": {
				"2024-03-05": {"1. open": "170.0", "4. close": "170.12", "5. volume": "1000"},
				"2024-03-04": {"1. open": "175.0", "4. close": "175.10", "5. volume": "1100"},
				"2024-03-01": {"1. open": "179.0", "4. close": "179.66", "5. volume": "1200"}
			}
		}`))
	}))
}

func TestFetchAlphaVantage(t *testing.T) {
	server := newAlphaVantageTestServer()
	defer server.Close()

	cfg := &config.Config{AlphaVantageBaseURL: server.URL, AlphaVantageAPIKey: "test-key"}
	fetcher := NewDataFetcher(cfg)

	ds, err := fetcher.FetchSeries(context.Background(), models.SeriesRequest{
		Source:   models.SourceAlphaVantage,
		SeriesID: "AAPL",
	})
	if err != nil {
		t.Fatalf("FetchSeries failed: %v", err)
	}

	if ds.Label != "AAPL" {
		t.Errorf("Expected symbol label, got %q", ds.Label)
	}
	if ds.Metadata == nil || ds.Metadata.Frequency != "Daily" {
		t.Errorf("Expected daily frequency metadata, got %+v", ds.Metadata)
	}
	if len(ds.Data) != 3 {
		t.Fatalf("Expected 3 data points, got %d", len(ds.Data))
	}

	// The date-keyed map normalizes to ascending order.
	if got := ds.Data[0].Date.String(); got != "2024-03-01" {
		t.Errorf("Expected first date 2024-03-01, got %s", got)
	}
	if ds.Data[2].Value == nil || *ds.Data[2].Value != 170.12 {
		t.Errorf("Expected last close 170.12, got %v", ds.Data[2].Value)
	}
}

func TestFetchAlphaVantageDateRange(t *testing.T) {
	server := newAlphaVantageTestServer()
	defer server.Close()

	cfg := &config.Config{AlphaVantageBaseURL: server.URL, AlphaVantageAPIKey: "test-key"}
	fetcher := NewDataFetcher(cfg)

	ds, err := fetcher.FetchSeries(context.Background(), models.SeriesRequest{
		Source:    models.SourceAlphaVantage,
		SeriesID:  "AAPL",
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
	})
	if err != nil {
		t.Fatalf("FetchSeries failed: %v", err)
	}
	if len(ds.Data) != 1 {
		t.Fatalf("Expected 1 data point in range, got %d", len(ds.Data))
	}
	if got := ds.Data[0].Date.String(); got != "2024-03-04" {
		t.Errorf("Expected 2024-03-04, got %s", got)
	}
}

func TestFetchAlphaVantageRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Rate-limit responses are 200s with a note and no series.
		w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`))
	}))
	defer server.Close()

	cfg := &config.Config{AlphaVantageBaseURL: server.URL, AlphaVantageAPIKey: "test-key"}
	fetcher := NewDataFetcher(cfg)

	_, err := fetcher.FetchSeries(context.Background(), models.SeriesRequest{
		Source:   models.SourceAlphaVantage,
		SeriesID: "AAPL",
	})
	if err == nil {
		t.Fatal("Expected an error for an empty time series")
	}
}
