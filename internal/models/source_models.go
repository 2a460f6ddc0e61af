package models

// WorldBankIndicatorRef names the indicator inside each observation.
type WorldBankIndicatorRef struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// WorldBankCountryRef names the country inside each observation.
type WorldBankCountryRef struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// WorldBankObservation is one record of a World Bank indicator
// response. Date is a bare year ("2023"); Value is null for years
// without data.
type WorldBankObservation struct {
	Indicator WorldBankIndicatorRef `json:"indicator"`
	Country   WorldBankCountryRef   `json:"country"`
	Date      string                `json:"date"`
	Value     *float64              `json:"value"`
}

// WorldBankPage is the metadata element of the two-element response
// array ([metadata, records]).
type WorldBankPage struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// AlphaVantageDailyResponse mirrors the TIME_SERIES_DAILY payload: a
// metadata object plus a map keyed by date string, each entry an OHLCV
// map of string fields ("4. close" is the one we chart).
type AlphaVantageDailyResponse struct {
	MetaData   map[string]string            `json:"Meta Data"`
	TimeSeries map[string]map[string]string `json:"Time Series (Daily)"`
}

// CensusTable is the raw shape of a Census API response: the first row
// holds column headers, the remaining rows hold string cells.
type CensusTable [][]string

// Headers returns the header row, or nil for an empty table.
func (t CensusTable) Headers() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Rows returns the data rows following the header row.
func (t CensusTable) Rows() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// YahooChartResponse is the envelope of the public Yahoo Finance chart
// endpoint. Errors come back inside the envelope (often with a 404)
// rather than as a bare error body.
type YahooChartResponse struct {
	Chart YahooChart `json:"chart"`
}

// YahooChart holds the result list and the in-band error.
type YahooChart struct {
	Result []YahooChartResult `json:"result"`
	Error  *YahooChartError   `json:"error"`
}

// YahooChartError is the in-band error of a chart response.
type YahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooChartResult carries one symbol's quotes: parallel arrays of unix
// timestamps and OHLCV columns.
type YahooChartResult struct {
	Meta       YahooChartMeta  `json:"meta"`
	Timestamps []int64         `json:"timestamp"`
	Indicators YahooIndicators `json:"indicators"`
}

// YahooChartMeta names the instrument.
type YahooChartMeta struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}

// YahooIndicators wraps the quote columns.
type YahooIndicators struct {
	Quote []YahooQuote `json:"quote"`
}

// YahooQuote holds the close column; entries are null for rows without
// a usable price.
type YahooQuote struct {
	Close []*float64 `json:"close"`
}

// ReleaseItem is one entry of the FRED releases calendar feed shown in
// the report sidebar.
type ReleaseItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}
