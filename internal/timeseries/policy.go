package timeseries

import "strings"

// GapPolicy selects how missing observations inside one series are
// treated before charting.
type GapPolicy string

const (
	// GapRemove drops missing points entirely.
	GapRemove GapPolicy = "remove"
	// GapZero replaces missing values with zero.
	GapZero GapPolicy = "zero"
	// GapInterpolate fills interior gaps linearly between the
	// surrounding valid points; leading and trailing gaps stay missing.
	GapInterpolate GapPolicy = "interpolate"
)

// ParseGapPolicy maps a user-supplied strategy string to a GapPolicy.
// Unrecognized strings degrade to GapRemove, the safest option for a
// render path that must not fail on a cosmetic field.
func ParseGapPolicy(s string) GapPolicy {
	switch GapPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case GapZero:
		return GapZero
	case GapInterpolate:
		return GapInterpolate
	case GapRemove, "":
		return GapRemove
	default:
		return GapRemove
	}
}

// ApplyGapPolicy applies the policy to one date-ascending point slice
// and returns a fresh slice; the input is never modified. Points whose
// value is absent, NaN or infinite count as missing. The input is
// assumed already sorted by date; this function does not re-sort.
func ApplyGapPolicy(points []DataPoint, policy GapPolicy) []DataPoint {
	switch policy {
	case GapZero:
		return zeroFill(points)
	case GapInterpolate:
		return interpolate(points)
	default:
		return removeMissing(points)
	}
}

func removeMissing(points []DataPoint) []DataPoint {
	out := make([]DataPoint, 0, len(points))
	for _, p := range points {
		if !IsMissing(p.Value) {
			out = append(out, p)
		}
	}
	return out
}

func zeroFill(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	for i, p := range points {
		if IsMissing(p.Value) {
			out[i] = DataPoint{Date: p.Date, Value: Number(0)}
		} else {
			out[i] = p
		}
	}
	return out
}

// interpolate fills each maximal run of missing points that is bounded
// by valid points on both sides. A run touching either end of the
// series has no anchor on one side and is left as-is.
func interpolate(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	copy(out, points)

	lastValid := -1
	for i, p := range points {
		if IsMissing(p.Value) {
			continue
		}
		if lastValid >= 0 && i-lastValid > 1 {
			start := *points[lastValid].Value
			end := *p.Value
			run := i - lastValid - 1
			step := (end - start) / float64(run+1)
			for j := 1; j <= run; j++ {
				out[lastValid+j] = DataPoint{
					Date:  points[lastValid+j].Date,
					Value: Number(start + step*float64(j)),
				}
			}
		}
		lastValid = i
	}
	return out
}
