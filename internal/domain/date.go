package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// dateLayouts are tried in order for string dates. Layouts without a zone
// are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Dates must fall in years 0 through 9999, the range RFC 3339 can express.
const (
	minDateYear = 0
	maxDateYear = 9999
)

// ParseDate normalizes a date attribute. Strings are parsed with the layouts
// above, numbers are Unix milliseconds, time.Time values are kept. A nil value
// stays nil. The result is in UTC.
func ParseDate(v any) (any, error) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return checkDateRange(d.UTC())
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return checkDateRange(t.UTC())
			}
		}
		return nil, NewValidationError(FieldDate, fmt.Sprintf("has unrecognized format %q", d), ErrInvalidDate)
	}

	if ms, ok := Number(v); ok {
		if math.IsNaN(ms) || ms < math.MinInt64 || ms >= math.MaxInt64 {
			return nil, NewValidationError(FieldDate, "is outside the supported range", ErrInvalidDate)
		}
		return checkDateRange(time.UnixMilli(int64(ms)).UTC())
	}
	return nil, NewValidationError(FieldDate, fmt.Sprintf("has unsupported type %T", v), ErrInvalidDate)
}

func checkDateRange(t time.Time) (any, error) {
	if y := t.Year(); y < minDateYear || y > maxDateYear {
		return nil, NewValidationError(FieldDate, fmt.Sprintf("year %d is outside 0-9999", y), ErrInvalidDate)
	}
	return t, nil
}

// StartOfDay returns midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
