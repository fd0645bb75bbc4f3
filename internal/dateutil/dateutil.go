// Package dateutil holds the date-key primitives shared by the store,
// the statistics engine and the dashboard. A date key is the canonical
// zero-padded YYYY-MM-DD string used to index completions and
// date-attached notes; keys sort lexicographically in calendar order.
package dateutil

import (
	"fmt"
	"time"
)

// KeyLayout is the time.Format layout of a date key.
const KeyLayout = "2006-01-02"

// DaysInMonth returns the number of days in the given month,
// leap years included (day 0 of the next month normalizes back).
func DaysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Key formats a calendar date as a date key. Callers supply in-range
// values; out-of-range days normalize per time.Date and are the
// caller's bug, not handled here.
func Key(year int, m time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(m), day)
}

// KeyFromTime returns the date key for t in t's location.
func KeyFromTime(t time.Time) string {
	return t.Format(KeyLayout)
}

// TodayKey returns the date key for the current local date.
func TodayKey() string {
	return KeyFromTime(time.Now())
}

// NormalizeKey truncates a timestamp such as "2024-03-15T10:00:00Z" to
// its date-only prefix. Strings already in key form pass through.
func NormalizeKey(s string) string {
	if len(s) > len(KeyLayout) {
		return s[:len(KeyLayout)]
	}
	return s
}

// Weekday reports the day of week for a calendar date. Used for grid
// column labels and week-boundary detection only.
func Weekday(year int, m time.Month, day int) time.Weekday {
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC).Weekday()
}
