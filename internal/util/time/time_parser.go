package time_parser

import (
	"fmt"
	"strconv"
	"time"
)

var isoFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp converts caller-supplied event timestamps to UTC.
// Accepts ISO strings, unix seconds or milliseconds (JSON numbers arrive
// as float64). Anything missing or unparseable falls back to now, which
// matches the insert-time default for event timestamps.
func ParseTimestamp(timestamp any) time.Time {
	if timestamp == nil {
		return time.Now().UTC()
	}

	switch v := timestamp.(type) {
	case string:
		if v == "" {
			return time.Now().UTC()
		}

		for _, format := range isoFormats {
			if t, err := time.Parse(format, v); err == nil {
				return t.UTC()
			}
		}

		return time.Now().UTC()

	case float64:
		if v > 1e12 { // milliseconds
			return time.Unix(0, int64(v)*int64(time.Millisecond)).UTC()
		}
		return time.Unix(int64(v), 0).UTC()

	case int64:
		if v > 1e12 {
			return time.Unix(0, v*int64(time.Millisecond)).UTC()
		}
		return time.Unix(v, 0).UTC()

	case int:
		return ParseTimestamp(int64(v))

	default:
		return time.Now().UTC()
	}
}

// ParseQueryTime parses a "since" query parameter. Unlike ParseTimestamp
// there is no sensible fallback for a filter bound, so bad input is an error.
func ParseQueryTime(value string) (time.Time, error) {
	for _, format := range isoFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), nil
		}
	}

	if unix, err := strconv.ParseInt(value, 10, 64); err == nil {
		if unix > 1e12 {
			return time.Unix(0, unix*int64(time.Millisecond)).UTC(), nil
		}
		return time.Unix(unix, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}
