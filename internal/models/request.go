package models

import "econograph/internal/charts"

// Known data source identifiers.
const (
	SourceFRED         = "fred"
	SourceWorldBank    = "worldbank"
	SourceAlphaVantage = "alphavantage"
	SourceYahoo        = "yahoo"
	SourceCensus       = "census"
)

// SeriesRequest names one series to fetch for a render batch.
type SeriesRequest struct {
	// Source is one of the Source* identifiers; empty means FRED.
	Source string `json:"source"`
	// SeriesID is the source-native identifier: a FRED series id
	// (GDP, UNRATE), a World Bank indicator optionally prefixed with
	// a country code (NY.GDP.MKTP.CD, DEU:NY.GDP.MKTP.CD), a ticker
	// (AAPL, ^GSPC) or a census variable column name.
	SeriesID string `json:"series_id"`
	// Label overrides the display name; empty uses the source title.
	Label string `json:"label,omitempty"`
	// StartDate/EndDate bound the observation range (YYYY-MM-DD).
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	// Census-only: dataset path and geography for the table query.
	CensusDataset   string `json:"census_dataset,omitempty"`
	CensusGeography string `json:"census_geography,omitempty"`
}

// RenderRequest is the POST /render body: which series to fetch, how to
// treat gaps, and how to draw the result.
type RenderRequest struct {
	Series    []SeriesRequest             `json:"series"`
	GapPolicy string                      `json:"gap_policy,omitempty"`
	ChartType string                      `json:"chart_type,omitempty"`
	Title     string                      `json:"title,omitempty"`
	Config    *charts.GraphConfigOverride `json:"config,omitempty"`
}

// SeriesError reports one failed series of a render batch; successful
// series still render.
type SeriesError struct {
	Source   string `json:"source"`
	SeriesID string `json:"series_id"`
	Error    string `json:"error"`
}

// RenderResult is the POST /render response.
type RenderResult struct {
	ReportURL  string        `json:"report_url"`
	FolderPath string        `json:"folder_path"`
	Datasets   int           `json:"datasets"`
	Rows       int           `json:"rows"`
	Errors     []SeriesError `json:"errors,omitempty"`
}

// DataSourceInfo describes one available source for GET /sources.
type DataSourceInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	RequiresAPIKey bool   `json:"requires_api_key"`
}
