// Package format renders observation values and dates for chart axes,
// tooltips and report tables. Every function is pure and total: a value
// that cannot be rendered meaningfully becomes the "N/A" marker instead
// of an error.
package format

import (
	"fmt"
	"math"
	"strings"

	"econograph/internal/timeseries"
)

// Missing is the display marker for absent or non-finite values.
const Missing = "N/A"

// FormatValue renders a nullable numeric value given an optional unit
// hint. Matching is case-insensitive substring matching; the first rule
// that applies wins:
//
//	absent / NaN / Inf            -> "N/A"
//	hint contains "percent" or %  -> "12.34%"
//	hint contains "index"         -> "42.10"
//	|v| >= 1e9                    -> "1.50B"
//	|v| >= 1e6                    -> "2.25M"
//	|v| >= 1e3                    -> "3.10K"
//	otherwise                     -> "7.00"
func FormatValue(v *float64, unitHint string) string {
	if timeseries.IsMissing(v) {
		return Missing
	}

	hint := strings.ToLower(unitHint)
	switch {
	case strings.Contains(hint, "percent") || strings.Contains(hint, "%"):
		return fmt.Sprintf("%.2f%%", *v)
	case strings.Contains(hint, "index"):
		return fmt.Sprintf("%.2f", *v)
	}

	abs := math.Abs(*v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", *v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", *v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", *v/1e3)
	default:
		return fmt.Sprintf("%.2f", *v)
	}
}

// FormatDate renders a date key for axis ticks and tooltips. The
// frequency hint (from series metadata) picks the label granularity;
// unknown or empty frequencies get the full date.
func FormatDate(key timeseries.DateKey, frequency string) string {
	freq := strings.ToLower(frequency)
	switch {
	case strings.Contains(freq, "annual") || strings.Contains(freq, "year"):
		return key.Time().Format("2006")
	case strings.Contains(freq, "quarter"):
		return quarterLabel(key)
	case strings.Contains(freq, "month"):
		return key.Time().Format("Jan 2006")
	default:
		return key.Time().Format("Jan 2, 2006")
	}
}

func quarterLabel(key timeseries.DateKey) string {
	t := key.Time()
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", quarter, t.Year())
}
