package fetchers

import (
	"context"
	"encoding/json"
	"fmt"

	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// fetchCensus fetches one variable column of a Census timeseries table.
// The request must name the dataset path (e.g. "timeseries/eits/resconst")
// and the variable column in SeriesID.
func (f *DataFetcher) fetchCensus(ctx context.Context, req models.SeriesRequest) (*timeseries.Dataset, error) {
	if req.CensusDataset == "" {
		return nil, fmt.Errorf("census requests require a dataset path")
	}

	r := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("get", req.SeriesID+",time")
	if req.CensusGeography != "" {
		r.SetQueryParam("for", req.CensusGeography)
	}
	if timeRange := censusTimeRange(req.StartDate, req.EndDate); timeRange != "" {
		r.SetQueryParam("time", timeRange)
	}

	resp, err := r.Get(f.cfg.CensusBaseURL + "/" + req.CensusDataset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Census data: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("Census API returned status %d", resp.StatusCode())
	}

	var table models.CensusTable
	if err := json.Unmarshal(resp.Body(), &table); err != nil {
		return nil, fmt.Errorf("failed to parse Census response: %w", err)
	}

	return NormalizeCensus(req, table)
}

// censusTimeRange builds the time predicate from the request bounds.
// Census timeseries endpoints accept "from YYYY to YYYY".
func censusTimeRange(startDate, endDate string) string {
	start := yearOf(startDate)
	end := yearOf(endDate)
	switch {
	case start != "" && end != "":
		return fmt.Sprintf("from %s to %s", start, end)
	case start != "":
		return "from " + start
	case end != "":
		return "to " + end
	default:
		return ""
	}
}
