package fetchers

import (
	"context"
	"encoding/json"
	"fmt"

	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// fetchAlphaVantage fetches the daily close series for a ticker.
func (f *DataFetcher) fetchAlphaVantage(ctx context.Context, req models.SeriesRequest) (*timeseries.Dataset, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     req.SeriesID,
			"outputsize": "full",
			"apikey":     f.cfg.AlphaVantageAPIKey,
		}).
		Get(f.cfg.AlphaVantageBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Alpha Vantage data: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("Alpha Vantage API returned status %d", resp.StatusCode())
	}

	var data models.AlphaVantageDailyResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse Alpha Vantage response: %w", err)
	}

	// Error and rate-limit responses come back as 200s with an empty
	// time series and a message field instead.
	if len(data.TimeSeries) == 0 {
		return nil, fmt.Errorf("Alpha Vantage returned no time series for %s (check the symbol and API key)", req.SeriesID)
	}

	return NormalizeAlphaVantage(req, &data), nil
}
