package timeseries

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when an observation date cannot be parsed.
// Callers must not substitute "now" or the zero time for a bad date.
var ErrInvalidDate = errors.New("invalid date")

// DateKey is the canonical, totally-ordered representation of an
// observation date. Sources report dates at different granularities
// ("2023", "2023-04", "2023-Q2", "2023-04-01", full timestamps); every
// form is normalized to the first instant of the implied period in UTC,
// so two points describing the same reporting period compare equal
// regardless of the original string format.
type DateKey struct {
	t time.Time
}

// dateLayouts are tried in order. Finer-grained layouts come first so a
// full timestamp is never truncated by a shorter prefix match.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

// ParseDateKey canonicalizes a date string into a DateKey.
func ParseDateKey(s string) (DateKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateKey{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return DateKey{t: t.UTC()}, nil
		}
	}

	// Quarterly form used by census economic indicator tables: 2023-Q2.
	if len(s) == 7 && s[4] == '-' && (s[5] == 'Q' || s[5] == 'q') {
		year, yerr := strconv.Atoi(s[:4])
		quarter, qerr := strconv.Atoi(s[6:])
		if yerr == nil && qerr == nil && quarter >= 1 && quarter <= 4 {
			month := time.Month((quarter-1)*3 + 1)
			return DateKey{t: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}, nil
		}
	}

	// Bare year, as reported by World Bank indicators.
	if year, err := strconv.Atoi(s); err == nil && len(s) == 4 {
		return DateKey{t: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)}, nil
	}

	return DateKey{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// DateKeyFromTime canonicalizes a native time value.
func DateKeyFromTime(t time.Time) DateKey {
	return DateKey{t: t.UTC()}
}

// Time returns the underlying UTC instant.
func (k DateKey) Time() time.Time { return k.t }

// IsZero reports whether the key is the zero value.
func (k DateKey) IsZero() bool { return k.t.IsZero() }

// Compare returns -1, 0 or +1 depending on calendar order.
func (k DateKey) Compare(other DateKey) int { return k.t.Compare(other.t) }

// Before reports whether k precedes other in calendar order.
func (k DateKey) Before(other DateKey) bool { return k.t.Before(other.t) }

// Equal reports whether two keys refer to the same instant.
func (k DateKey) Equal(other DateKey) bool { return k.t.Equal(other.t) }

// String renders the canonical YYYY-MM-DD form.
func (k DateKey) String() string { return k.t.Format("2006-01-02") }

// MarshalJSON renders the canonical YYYY-MM-DD form.
func (k DateKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON parses any supported date form.
func (k *DateKey) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDateKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// unix returns a comparable scalar used for map keys during alignment.
func (k DateKey) unix() int64 { return k.t.Unix() }
