// Package stats derives progress figures from store snapshots. All
// functions are pure: they never mutate their input and nothing is
// cached. Percentages round half-up; every division is guarded so a
// zero goal or an empty habit list yields 0, never a fault.
package stats

import (
	"math"
	"sort"
	"time"

	"habitflow/internal/dateutil"
	"habitflow/internal/store"
)

// HabitStats is one habit's progress within a month. Left goes negative
// when the habit is over goal; Percentage can exceed 100.
type HabitStats struct {
	Completed  int
	Left       int
	Percentage int
}

// MonthlySummary aggregates all habits for a month. Total is the sum of
// goals, not of day-slots.
type MonthlySummary struct {
	Completed  int
	Total      int
	Percentage int
}

// DayPoint is one day of the daily trend.
type DayPoint struct {
	Day        int
	Percentage int
}

// MonthPoint is one month of the yearly trend.
type MonthPoint struct {
	Month      time.Month
	Percentage int
}

// TodaySnapshot is the share of habits completed on the current date.
type TodaySnapshot struct {
	Completed  int
	Total      int
	Left       int
	Percentage int
}

// RankedHabit pairs a habit with its monthly stats for leaderboards.
type RankedHabit struct {
	Habit store.Habit
	Stats HabitStats
}

func pct(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ForHabit counts the habit's completions over every day of the month.
func ForHabit(h store.Habit, year int, m time.Month) HabitStats {
	days := dateutil.DaysInMonth(year, m)
	completed := 0
	for day := 1; day <= days; day++ {
		if h.Done(dateutil.Key(year, m, day)) {
			completed++
		}
	}
	return HabitStats{
		Completed:  completed,
		Left:       h.Goal - completed,
		Percentage: pct(completed, h.Goal),
	}
}

// Monthly sums completions and goals across all habits.
func Monthly(habits []store.Habit, year int, m time.Month) MonthlySummary {
	var completed, total int
	for _, h := range habits {
		completed += ForHabit(h, year, m).Completed
		total += h.Goal
	}
	return MonthlySummary{
		Completed:  completed,
		Total:      total,
		Percentage: pct(completed, total),
	}
}

// DailyTrend returns one point per calendar day of the month: the share
// of habits completed that day. With no habits every day is 0%.
func DailyTrend(habits []store.Habit, year int, m time.Month) []DayPoint {
	days := dateutil.DaysInMonth(year, m)
	total := len(habits)
	if total < 1 {
		total = 1
	}
	out := make([]DayPoint, days)
	for day := 1; day <= days; day++ {
		key := dateutil.Key(year, m, day)
		completed := 0
		for _, h := range habits {
			if h.Done(key) {
				completed++
			}
		}
		out[day-1] = DayPoint{Day: day, Percentage: pct(completed, total)}
	}
	return out
}

// MonthlyTrend returns twelve points, January through December. Months
// after selected are 0 placeholders; computed months divide completions
// by day-slots (habits × days in the month), the dashboard's
// year-to-date trend line.
func MonthlyTrend(habits []store.Habit, year int, selected time.Month) []MonthPoint {
	out := make([]MonthPoint, 12)
	for m := time.January; m <= time.December; m++ {
		out[m-1] = MonthPoint{Month: m}
		if m > selected {
			continue
		}
		days := dateutil.DaysInMonth(year, m)
		completed := 0
		for _, h := range habits {
			for day := 1; day <= days; day++ {
				if h.Done(dateutil.Key(year, m, day)) {
					completed++
				}
			}
		}
		out[m-1].Percentage = pct(completed, len(habits)*days)
	}
	return out
}

// Today reports completions recorded for now's calendar date. Left is
// clamped at zero for display.
func Today(habits []store.Habit, now time.Time) TodaySnapshot {
	key := dateutil.KeyFromTime(now)
	completed := 0
	for _, h := range habits {
		if h.Done(key) {
			completed++
		}
	}
	left := len(habits) - completed
	if left < 0 {
		left = 0
	}
	return TodaySnapshot{
		Completed:  completed,
		Total:      len(habits),
		Left:       left,
		Percentage: pct(completed, len(habits)),
	}
}

// TopHabits ranks habits by monthly percentage, best first, and returns
// at most n. Ties keep collection order (stable sort).
func TopHabits(habits []store.Habit, year int, m time.Month, n int) []RankedHabit {
	ranked := make([]RankedHabit, 0, len(habits))
	for _, h := range habits {
		ranked = append(ranked, RankedHabit{Habit: h, Stats: ForHabit(h, year, m)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.Percentage > ranked[j].Stats.Percentage
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
