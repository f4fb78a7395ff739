package shared

import (
	"strings"
	"time"

	"pmsbridge/shared/constant"
)

// BuildCacheKey joins prefix and parts with colons.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}

	return constant.Empty
}

// ParseDate reads a calendar date from a vendor value such as "2024-03-01" or "2024-03-01T15:00:00".
// The result is midnight UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) < len(constant.DateLayout) {
		return time.Time{}, false
	}

	date, err := time.Parse(constant.DateLayout, value[:len(constant.DateLayout)])
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// EpochMillis converts a vendor date or timestamp to epoch milliseconds.
func EpochMillis(value string) (int64, bool) {
	value = strings.TrimSpace(value)

	for _, layout := range []string{time.RFC3339, constant.DateTimeLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UnixMilli(), true
		}
	}

	date, ok := ParseDate(value)
	if !ok {
		return 0, false
	}

	return date.UnixMilli(), true
}
