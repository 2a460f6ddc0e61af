package models

// FREDObservation is one observation in a FRED observations response.
// Value arrives as a string; the sentinel "." marks a missing value.
type FREDObservation struct {
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Date          string `json:"date"`
	Value         string `json:"value"`
}

// FREDObservationsResponse mirrors GET /fred/series/observations.
type FREDObservationsResponse struct {
	RealtimeStart    string            `json:"realtime_start"`
	RealtimeEnd      string            `json:"realtime_end"`
	ObservationStart string            `json:"observation_start"`
	ObservationEnd   string            `json:"observation_end"`
	Units            string            `json:"units"`
	Count            int               `json:"count"`
	Observations     []FREDObservation `json:"observations"`
}

// FREDSeriesInfo is one entry of GET /fred/series.
type FREDSeriesInfo struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	ObservationStart   string `json:"observation_start"`
	ObservationEnd     string `json:"observation_end"`
	Frequency          string `json:"frequency"`
	FrequencyShort     string `json:"frequency_short"`
	Units              string `json:"units"`
	UnitsShort         string `json:"units_short"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	LastUpdated        string `json:"last_updated"`
	Popularity         int    `json:"popularity"`
	Notes              string `json:"notes"`
}

// FREDSeriesResponse mirrors GET /fred/series (a one-element envelope).
type FREDSeriesResponse struct {
	Seriess []FREDSeriesInfo `json:"seriess"`
}
