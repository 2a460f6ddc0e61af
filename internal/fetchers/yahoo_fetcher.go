package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// yahooDefaultLookback bounds the window when a request carries no
// start date.
const yahooDefaultLookback = 365 * 24 * time.Hour

// fetchYahoo fetches the daily close series for a ticker from the
// public Yahoo Finance chart endpoint. No API key is required; index
// symbols like ^GSPC work too.
func (f *DataFetcher) fetchYahoo(ctx context.Context, req models.SeriesRequest) (*timeseries.Dataset, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.SeriesID))

	period1, period2, err := yahooPeriodRange(req, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(period1, 10),
			"period2":  strconv.FormatInt(period2, 10),
			"interval": "1d",
		}).
		Get(f.cfg.YahooBaseURL + "/" + symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Yahoo Finance data: %w", err)
	}

	// Unknown symbols come back as a 404 whose body still carries the
	// chart envelope with the error field set, so parse before judging
	// the status code.
	var data models.YahooChartResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse Yahoo Finance response: %w", err)
	}
	if data.Chart.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance error for %s: %s", symbol, data.Chart.Error.Description)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("Yahoo Finance API returned status %d", resp.StatusCode())
	}
	if len(data.Chart.Result) == 0 {
		return nil, fmt.Errorf("Yahoo Finance returned no data for %s", symbol)
	}

	return NormalizeYahoo(req, &data.Chart.Result[0]), nil
}

// yahooPeriodRange converts the request bounds into the unix-second
// window the chart endpoint expects. The end bound is pushed one day
// forward because period2 is exclusive.
func yahooPeriodRange(req models.SeriesRequest, now time.Time) (int64, int64, error) {
	start := now.Add(-yahooDefaultLookback)
	end := now

	if req.StartDate != "" {
		key, err := timeseries.ParseDateKey(req.StartDate)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid start_date: %w", err)
		}
		start = key.Time()
	}
	if req.EndDate != "" {
		key, err := timeseries.ParseDateKey(req.EndDate)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid end_date: %w", err)
		}
		end = key.Time().Add(24 * time.Hour)
	}

	return start.Unix(), end.Unix(), nil
}
