package timeseries

import "sort"

// Row is one line of the unified table produced by Align: one date, one
// value column per input dataset. Values maps dataset id to the
// observation at that exact date, nil when the dataset has none.
// Metadata carries each dataset's metadata by reference so tooltip
// lookups see the live object, not a copy.
type Row struct {
	Date     DateKey              `json:"date"`
	Values   map[string]*float64  `json:"values"`
	Metadata map[string]*Metadata `json:"-"`
}

// Align merges independently-shaped datasets into one table ordered
// ascending by date. The date axis is the union of every date key seen
// across all inputs: an observation present in only one dataset still
// produces a row, with nil for every other dataset at that date.
// Dates that coincide across datasets collapse into a single row.
// Align([]) returns an empty table.
//
// If a dataset carries two points with the same date key, the later one
// in its slice wins; fetchers normalize sources so this does not occur
// in practice.
func Align(datasets []Dataset) []Row {
	if len(datasets) == 0 {
		return nil
	}

	// Collect the union of date keys and per-dataset value indexes.
	keys := make(map[int64]DateKey)
	indexes := make([]map[int64]*float64, len(datasets))
	for i, ds := range datasets {
		index := make(map[int64]*float64, len(ds.Data))
		for _, p := range ds.Data {
			u := p.Date.unix()
			keys[u] = p.Date
			index[u] = p.Value
		}
		indexes[i] = index
	}

	order := make([]int64, 0, len(keys))
	for u := range keys {
		order = append(order, u)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	rows := make([]Row, 0, len(order))
	for _, u := range order {
		row := Row{
			Date:     keys[u],
			Values:   make(map[string]*float64, len(datasets)),
			Metadata: make(map[string]*Metadata, len(datasets)),
		}
		for i, ds := range datasets {
			if v, ok := indexes[i][u]; ok {
				row.Values[ds.ID] = v
			} else {
				row.Values[ds.ID] = nil
			}
			row.Metadata[ds.ID] = ds.Metadata
		}
		rows = append(rows, row)
	}
	return rows
}
