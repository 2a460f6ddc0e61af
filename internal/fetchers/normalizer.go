package fetchers

import (
	"fmt"
	"strconv"
	"time"

	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// fredMissingValue is the sentinel FRED emits for observations without
// a value.
const fredMissingValue = "."

// NormalizeFRED converts a FRED observations response into a dataset.
// The "." sentinel and non-numeric values become absent points;
// observations with unparseable dates are dropped.
func NormalizeFRED(req models.SeriesRequest, obs *models.FREDObservationsResponse, info *models.FREDSeriesInfo) *timeseries.Dataset {
	ds := &timeseries.Dataset{
		ID:    req.SeriesID,
		Label: req.Label,
	}

	if info != nil {
		if ds.Label == "" {
			ds.Label = info.Title
		}
		ds.Metadata = &timeseries.Metadata{
			Title:              info.Title,
			Units:              info.Units,
			Frequency:          info.Frequency,
			SeasonalAdjustment: info.SeasonalAdjustment,
			Source:             "FRED",
			LastUpdated:        info.LastUpdated,
		}
	} else {
		ds.Metadata = &timeseries.Metadata{Title: req.SeriesID, Source: "FRED"}
	}
	if ds.Label == "" {
		ds.Label = req.SeriesID
	}

	for _, o := range obs.Observations {
		date, err := timeseries.ParseDateKey(o.Date)
		if err != nil {
			continue
		}
		point := timeseries.DataPoint{Date: date}
		if o.Value != fredMissingValue {
			if v, err := strconv.ParseFloat(o.Value, 64); err == nil {
				point.Value = timeseries.Number(v)
			}
		}
		ds.Data = append(ds.Data, point)
	}

	ds.SortPoints()
	return ds
}

// NormalizeWorldBank converts World Bank indicator records into a
// dataset. Records arrive newest first with bare-year dates; null
// values become absent points.
func NormalizeWorldBank(req models.SeriesRequest, records []models.WorldBankObservation) *timeseries.Dataset {
	ds := &timeseries.Dataset{
		ID:    req.SeriesID,
		Label: req.Label,
		Metadata: &timeseries.Metadata{
			Source:    "World Bank",
			Frequency: "Annual",
		},
	}

	for _, rec := range records {
		if ds.Metadata.Title == "" && rec.Indicator.Value != "" {
			ds.Metadata.Title = rec.Indicator.Value
			if rec.Country.Value != "" {
				ds.Metadata.Title = fmt.Sprintf("%s (%s)", rec.Indicator.Value, rec.Country.Value)
			}
		}
		date, err := timeseries.ParseDateKey(rec.Date)
		if err != nil {
			continue
		}
		ds.Data = append(ds.Data, timeseries.DataPoint{Date: date, Value: rec.Value})
	}

	if ds.Label == "" {
		ds.Label = ds.Metadata.Title
	}
	if ds.Label == "" {
		ds.Label = req.SeriesID
	}

	ds.SortPoints()
	return ds
}

// alphaVantageCloseField is the OHLCV field charted for tickers.
const alphaVantageCloseField = "4. close"

// NormalizeAlphaVantage converts a daily time series response into a
// dataset of close prices.
func NormalizeAlphaVantage(req models.SeriesRequest, resp *models.AlphaVantageDailyResponse) *timeseries.Dataset {
	ds := &timeseries.Dataset{
		ID:    req.SeriesID,
		Label: req.Label,
		Metadata: &timeseries.Metadata{
			Title:       resp.MetaData["2. Symbol"],
			Units:       "US dollars",
			Frequency:   "Daily",
			Source:      "Alpha Vantage",
			LastUpdated: resp.MetaData["3. Last Refreshed"],
		},
	}
	if ds.Metadata.Title == "" {
		ds.Metadata.Title = req.SeriesID
	}
	if ds.Label == "" {
		ds.Label = ds.Metadata.Title
	}

	for dateStr, fields := range resp.TimeSeries {
		date, err := timeseries.ParseDateKey(dateStr)
		if err != nil {
			continue
		}
		if !inRequestRange(req, dateStr) {
			continue
		}
		point := timeseries.DataPoint{Date: date}
		if v, err := strconv.ParseFloat(fields[alphaVantageCloseField], 64); err == nil {
			point.Value = timeseries.Number(v)
		}
		ds.Data = append(ds.Data, point)
	}

	ds.SortPoints()
	return ds
}

// inRequestRange filters ISO dates against the request bounds. Bounds
// and observation dates both sort lexically in YYYY-MM-DD form.
func inRequestRange(req models.SeriesRequest, date string) bool {
	if req.StartDate != "" && date < req.StartDate {
		return false
	}
	if req.EndDate != "" && date > req.EndDate {
		return false
	}
	return true
}

// NormalizeYahoo converts one Yahoo chart result into a dataset of
// daily closes. Timestamps are market-open instants and collapse to
// the trading day; null closes become absent points.
func NormalizeYahoo(req models.SeriesRequest, result *models.YahooChartResult) *timeseries.Dataset {
	ds := &timeseries.Dataset{
		ID:    req.SeriesID,
		Label: req.Label,
		Metadata: &timeseries.Metadata{
			Title:     result.Meta.LongName,
			Units:     "US dollars",
			Frequency: "Daily",
			Source:    "Yahoo Finance",
		},
	}
	if ds.Metadata.Title == "" {
		ds.Metadata.Title = result.Meta.ShortName
	}
	if ds.Metadata.Title == "" {
		ds.Metadata.Title = result.Meta.Symbol
	}
	if ds.Metadata.Title == "" {
		ds.Metadata.Title = req.SeriesID
	}
	if ds.Label == "" {
		ds.Label = ds.Metadata.Title
	}

	var closes []*float64
	if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}
	for i, sec := range result.Timestamps {
		ts := time.Unix(sec, 0).UTC()
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		point := timeseries.DataPoint{Date: timeseries.DateKeyFromTime(day)}
		if i < len(closes) {
			point.Value = closes[i]
		}
		ds.Data = append(ds.Data, point)
	}

	ds.SortPoints()
	return ds
}

// NormalizeCensus extracts the requested variable column from a Census
// table. The table's "time" column supplies the dates; non-numeric
// cells become absent points.
func NormalizeCensus(req models.SeriesRequest, table models.CensusTable) (*timeseries.Dataset, error) {
	headers := table.Headers()
	if headers == nil {
		return nil, fmt.Errorf("Census table is empty")
	}

	timeCol := -1
	valueCol := -1
	for i, h := range headers {
		switch h {
		case "time":
			timeCol = i
		case req.SeriesID:
			valueCol = i
		}
	}
	if timeCol < 0 {
		return nil, fmt.Errorf("Census table has no time column")
	}
	if valueCol < 0 {
		return nil, fmt.Errorf("Census table has no %s column", req.SeriesID)
	}

	ds := &timeseries.Dataset{
		ID:    req.SeriesID,
		Label: req.Label,
		Metadata: &timeseries.Metadata{
			Title:  req.SeriesID,
			Source: "U.S. Census Bureau",
		},
	}
	if ds.Label == "" {
		ds.Label = req.SeriesID
	}

	for _, row := range table.Rows() {
		if timeCol >= len(row) || valueCol >= len(row) {
			continue
		}
		date, err := timeseries.ParseDateKey(row[timeCol])
		if err != nil {
			continue
		}
		point := timeseries.DataPoint{Date: date}
		if v, err := strconv.ParseFloat(row[valueCol], 64); err == nil {
			point.Value = timeseries.Number(v)
		}
		ds.Data = append(ds.Data, point)
	}

	ds.SortPoints()
	return ds, nil
}
