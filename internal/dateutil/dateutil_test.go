package dateutil

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year int
		m    time.Month
		want int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap
		{2023, time.February, 28},
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100, not 400
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.m); got != c.want {
			t.Errorf("DaysInMonth(%d, %s)=%d, want %d", c.year, c.m, got, c.want)
		}
	}
}

func TestKey(t *testing.T) {
	if got := Key(2024, time.March, 5); got != "2024-03-05" {
		t.Fatalf("Key=%q, want 2024-03-05", got)
	}
	// Keys must sort in calendar order.
	if !(Key(2024, time.September, 30) < Key(2024, time.October, 1)) {
		t.Fatalf("keys do not sort lexicographically across months")
	}
	if !(Key(2023, time.December, 31) < Key(2024, time.January, 1)) {
		t.Fatalf("keys do not sort lexicographically across years")
	}
}

func TestKeyFromTime(t *testing.T) {
	ts := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	if got := KeyFromTime(ts); got != "2024-03-15" {
		t.Fatalf("KeyFromTime=%q, want 2024-03-15", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("2024-03-15T10:00:00Z"); got != "2024-03-15" {
		t.Fatalf("NormalizeKey(timestamp)=%q, want 2024-03-15", got)
	}
	if got := NormalizeKey("2024-03-15"); got != "2024-03-15" {
		t.Fatalf("NormalizeKey(key)=%q, want unchanged", got)
	}
	if got := NormalizeKey(""); got != "" {
		t.Fatalf("NormalizeKey(empty)=%q, want empty", got)
	}
}

func TestWeekday(t *testing.T) {
	// 2024-01-01 was a Monday.
	if got := Weekday(2024, time.January, 1); got != time.Monday {
		t.Fatalf("Weekday(2024-01-01)=%s, want Monday", got)
	}
}
