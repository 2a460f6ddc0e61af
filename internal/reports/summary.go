package reports

import (
	"fmt"
	"strings"

	"econograph/internal/format"
	"econograph/internal/timeseries"
)

// FallbackCommentary builds a deterministic markdown summary of the
// charted series for reports generated without an LLM key or after an
// LLM failure.
func FallbackCommentary(title string, datasets []timeseries.Dataset) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "## Summary\n\n")

	for _, ds := range datasets {
		first, last, firstDate, lastDate := endpoints(ds)
		if first == nil {
			fmt.Fprintf(&buf, "- **%s**: no observations in the selected range.\n", ds.Label)
			continue
		}

		hint := unitHint(ds)
		line := fmt.Sprintf("- **%s**: %s on %s", ds.Label,
			format.FormatValue(first, hint), firstDate.String())
		if !lastDate.Equal(firstDate) {
			direction := "unchanged"
			if *last > *first {
				direction = "up"
			} else if *last < *first {
				direction = "down"
			}
			line += fmt.Sprintf(", %s on %s (%s over the period)",
				format.FormatValue(last, hint), lastDate.String(), direction)
		}
		buf.WriteString(line + ".\n")
	}

	return buf.String()
}

// endpoints returns the first and last present values of a dataset.
func endpoints(ds timeseries.Dataset) (first, last *float64, firstDate, lastDate timeseries.DateKey) {
	for _, point := range ds.Data {
		if timeseries.IsMissing(point.Value) {
			continue
		}
		if first == nil {
			first = point.Value
			firstDate = point.Date
		}
		last = point.Value
		lastDate = point.Date
	}
	return first, last, firstDate, lastDate
}
