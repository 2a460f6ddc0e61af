package fetchers

import (
	"context"
	"encoding/json"
	"fmt"

	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// fetchFRED fetches observations and series info for one FRED series
// and normalizes them into a dataset.
func (f *DataFetcher) fetchFRED(ctx context.Context, req models.SeriesRequest) (*timeseries.Dataset, error) {
	obs, err := f.fetchFREDObservations(ctx, req)
	if err != nil {
		return nil, err
	}

	info, err := f.fetchFREDSeriesInfo(ctx, req.SeriesID)
	if err != nil {
		// Metadata only improves labels and axis hints; chart with
		// what we have.
		f.log.Warnf("FRED series info unavailable for %s: %v", req.SeriesID, err)
	}

	return NormalizeFRED(req, obs, info), nil
}

// fetchFREDObservations fetches the observation list for a series.
func (f *DataFetcher) fetchFREDObservations(ctx context.Context, req models.SeriesRequest) (*models.FREDObservationsResponse, error) {
	r := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"series_id": req.SeriesID,
			"api_key":   f.cfg.FREDAPIKey,
			"file_type": "json",
		})
	if req.StartDate != "" {
		r.SetQueryParam("observation_start", req.StartDate)
	}
	if req.EndDate != "" {
		r.SetQueryParam("observation_end", req.EndDate)
	}

	resp, err := r.Get(f.cfg.FREDBaseURL + "/series/observations")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch FRED observations: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("FRED observations API returned status %d", resp.StatusCode())
	}

	var data models.FREDObservationsResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse FRED observations response: %w", err)
	}
	return &data, nil
}

// fetchFREDSeriesInfo fetches title, units and frequency for a series.
func (f *DataFetcher) fetchFREDSeriesInfo(ctx context.Context, seriesID string) (*models.FREDSeriesInfo, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"series_id": seriesID,
			"api_key":   f.cfg.FREDAPIKey,
			"file_type": "json",
		}).
		Get(f.cfg.FREDBaseURL + "/series")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch FRED series info: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("FRED series API returned status %d", resp.StatusCode())
	}

	var data models.FREDSeriesResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse FRED series response: %w", err)
	}
	if len(data.Seriess) == 0 {
		return nil, fmt.Errorf("FRED series %s not found", seriesID)
	}
	return &data.Seriess[0], nil
}
