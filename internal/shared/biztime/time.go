// Package biztime provides the clock used for persisted timestamps.
// All storage and transport use UTC with microsecond precision, which every
// supported database column can hold without rounding.
package biztime

import (
	"time"
)

// ISO8601 is the layout used for every timestamp exposed by the API.
const ISO8601 = "2006-01-02T15:04:05.000000Z07:00"

// Precision is the resolution timestamps are truncated to before storage.
const Precision = time.Microsecond

// NowUTC returns current time in UTC truncated to storage precision.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(Precision)
}

// NowAfter returns the current time, nudged forward so that it is strictly
// later than prev. Used for fields such as updated_at that must advance on
// every mutation even when the wall clock has not.
func NowAfter(prev time.Time) time.Time {
	now := NowUTC()
	if !now.After(prev) {
		return prev.UTC().Truncate(Precision).Add(Precision)
	}
	return now
}

// ToUTC converts a time (any timezone) to UTC at storage precision.
func ToUTC(t time.Time) time.Time {
	return t.UTC().Truncate(Precision)
}

// FormatISO8601 renders t with the ISO8601 layout, or nil for the zero time.
func FormatISO8601(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(ISO8601)
	return &s
}
