package fetchers

import (
	"context"
	"fmt"
	"time"

	"econograph/internal/config"
	"econograph/internal/logger"
	"econograph/internal/models"
	"econograph/internal/timeseries"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

// DataFetcher handles fetching series data from all external sources
type DataFetcher struct {
	client *resty.Client
	parser *gofeed.Parser
	cfg    *config.Config
	log    *logger.Logger
}

// NewDataFetcher creates a new data fetcher instance
func NewDataFetcher(cfg *config.Config) *DataFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &DataFetcher{
		client: client,
		parser: gofeed.NewParser(),
		cfg:    cfg,
		log:    logger.Component("fetchers"),
	}
}

// FetchSeries fetches one series from its source and normalizes it into
// a dataset. An empty source defaults to FRED.
func (f *DataFetcher) FetchSeries(ctx context.Context, req models.SeriesRequest) (*timeseries.Dataset, error) {
	source := req.Source
	if source == "" {
		source = models.SourceFRED
	}

	switch source {
	case models.SourceFRED:
		return f.fetchFRED(ctx, req)
	case models.SourceWorldBank:
		return f.fetchWorldBank(ctx, req)
	case models.SourceAlphaVantage:
		return f.fetchAlphaVantage(ctx, req)
	case models.SourceYahoo:
		return f.fetchYahoo(ctx, req)
	case models.SourceCensus:
		return f.fetchCensus(ctx, req)
	default:
		return nil, fmt.Errorf("unknown data source: %s", source)
	}
}

// seriesResult carries one fetch outcome back to FetchAll.
type seriesResult struct {
	index   int
	dataset *timeseries.Dataset
	err     error
}

// FetchAll fetches all requested series concurrently. Failed series
// become entries in the returned error list; the successful datasets
// keep their request order.
func (f *DataFetcher) FetchAll(ctx context.Context, requests []models.SeriesRequest) ([]timeseries.Dataset, []models.SeriesError) {
	f.log.Infof("Starting data fetch for %d series", len(requests))

	resultChan := make(chan seriesResult, len(requests))
	for i, req := range requests {
		go func(i int, req models.SeriesRequest) {
			ds, err := f.FetchSeries(ctx, req)
			resultChan <- seriesResult{index: i, dataset: ds, err: err}
		}(i, req)
	}

	ordered := make([]*timeseries.Dataset, len(requests))
	settled := make([]bool, len(requests))
	var errs []models.SeriesError

	completed := 0
	for completed < len(requests) {
		select {
		case res := <-resultChan:
			completed++
			settled[res.index] = true
			if res.err != nil {
				req := requests[res.index]
				f.log.Errorf("Series fetch failed for %s/%s: %v", req.Source, req.SeriesID, res.err)
				errs = append(errs, models.SeriesError{
					Source:   req.Source,
					SeriesID: req.SeriesID,
					Error:    res.err.Error(),
				})
				continue
			}
			ordered[res.index] = res.dataset
		case <-ctx.Done():
			// Only series still in flight get a cancellation entry;
			// series that already failed keep their single error.
			for i := range requests {
				if !settled[i] {
					errs = append(errs, models.SeriesError{
						Source:   requests[i].Source,
						SeriesID: requests[i].SeriesID,
						Error:    ctx.Err().Error(),
					})
				}
			}
			completed = len(requests)
		}
	}

	datasets := make([]timeseries.Dataset, 0, len(requests))
	for _, ds := range ordered {
		if ds != nil {
			datasets = append(datasets, *ds)
		}
	}

	f.log.Infof("Data fetch completed: %d datasets, %d errors", len(datasets), len(errs))
	return datasets, errs
}
