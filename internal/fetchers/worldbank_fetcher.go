package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// defaultWorldBankCountry is used when a series id carries no country
// prefix.
const defaultWorldBankCountry = "USA"

// fetchWorldBank fetches one indicator for one country. The series id
// is either a bare indicator code (NY.GDP.MKTP.CD) or prefixed with a
// country code ("DEU:NY.GDP.MKTP.CD").
func (f *DataFetcher) fetchWorldBank(ctx context.Context, req models.SeriesRequest) (*timeseries.Dataset, error) {
	country, indicator := splitWorldBankSeriesID(req.SeriesID)

	r := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"format":   "json",
			"per_page": "10000",
		})
	if dateRange := worldBankDateRange(req.StartDate, req.EndDate); dateRange != "" {
		r.SetQueryParam("date", dateRange)
	}

	url := fmt.Sprintf("%s/country/%s/indicator/%s", f.cfg.WorldBankBaseURL, country, indicator)
	resp, err := r.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch World Bank indicator: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("World Bank API returned status %d", resp.StatusCode())
	}

	// The response is a two-element array: [metadata, records]. A
	// one-element array signals an API error message.
	var elements []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &elements); err != nil {
		return nil, fmt.Errorf("failed to parse World Bank response: %w", err)
	}
	if len(elements) < 2 {
		return nil, fmt.Errorf("World Bank returned no data for %s (check the indicator code)", indicator)
	}

	var page models.WorldBankPage
	if err := json.Unmarshal(elements[0], &page); err != nil {
		return nil, fmt.Errorf("failed to parse World Bank metadata: %w", err)
	}

	var records []models.WorldBankObservation
	if err := json.Unmarshal(elements[1], &records); err != nil {
		return nil, fmt.Errorf("failed to parse World Bank records: %w", err)
	}

	return NormalizeWorldBank(req, records), nil
}

// splitWorldBankSeriesID splits an optional country prefix off a series
// id.
func splitWorldBankSeriesID(seriesID string) (country, indicator string) {
	if prefix, rest, found := strings.Cut(seriesID, ":"); found {
		return prefix, rest
	}
	return defaultWorldBankCountry, seriesID
}

// worldBankDateRange builds the year-range date parameter from the
// request bounds. The API accepts "START:END" in years.
func worldBankDateRange(startDate, endDate string) string {
	start := yearOf(startDate)
	end := yearOf(endDate)
	if start == "" && end == "" {
		return ""
	}
	if start == "" {
		start = "1960"
	}
	if end == "" {
		end = fmt.Sprintf("%d", time.Now().Year())
	}
	return start + ":" + end
}

// yearOf extracts the year from a YYYY-MM-DD (or bare year) bound.
func yearOf(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}
