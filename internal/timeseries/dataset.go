package timeseries

import (
	"math"
	"sort"
)

// DataPoint is a single observation. A nil Value means the source
// reported no observation for that date; this is distinct from zero and
// from NaN (a present-but-unusable number, which consumers also treat
// as missing).
type DataPoint struct {
	Date  DateKey  `json:"date"`
	Value *float64 `json:"value"`
}

// Number is a convenience for building a present value in place.
func Number(v float64) *float64 { return &v }

// IsMissing reports whether a value carries no usable observation:
// absent, NaN or infinite.
func IsMissing(v *float64) bool {
	return v == nil || math.IsNaN(*v) || math.IsInf(*v, 0)
}

// Metadata describes a dataset for tooltips and axis labeling. Known
// fields are typed; source-specific oddities go into Extra.
type Metadata struct {
	Title              string            `json:"title,omitempty"`
	Units              string            `json:"units,omitempty"`
	Frequency          string            `json:"frequency,omitempty"`
	SeasonalAdjustment string            `json:"seasonal_adjustment,omitempty"`
	Source             string            `json:"source,omitempty"`
	LastUpdated        string            `json:"last_updated,omitempty"`
	Extra              map[string]string `json:"extra,omitempty"`
}

// Dataset is one normalized series ready for alignment. ID must be
// unique within a render batch; the aligner relies on the caller having
// de-duplicated ids beforehand. Data is ordered ascending by date.
type Dataset struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Data     []DataPoint `json:"data"`
	Metadata *Metadata   `json:"metadata,omitempty"`
}

// SortPoints orders the dataset's points ascending by date in place.
// Fetchers call this once after normalization so the gap policies can
// assume sorted input.
func (d *Dataset) SortPoints() {
	sort.SliceStable(d.Data, func(i, j int) bool {
		return d.Data[i].Date.Before(d.Data[j].Date)
	})
}
