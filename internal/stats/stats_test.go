package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitflow/internal/dateutil"
	"habitflow/internal/store"
)

func habitWithCompletions(goal int, days ...int) store.Habit {
	c := map[string]bool{}
	for _, d := range days {
		c[dateutil.Key(2024, time.March, d)] = true
	}
	return store.Habit{ID: "h", Name: "h", Goal: goal, Completions: c}
}

func TestForHabit(t *testing.T) {
	h := habitWithCompletions(30, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	got := ForHabit(h, 2024, time.March)
	assert.Equal(t, 15, got.Completed)
	assert.Equal(t, 15, got.Left)
	assert.Equal(t, 50, got.Percentage)
}

func TestForHabitIgnoresExplicitFalse(t *testing.T) {
	h := habitWithCompletions(10, 1)
	h.Completions[dateutil.Key(2024, time.March, 2)] = false
	got := ForHabit(h, 2024, time.March)
	assert.Equal(t, 1, got.Completed)
}

func TestForHabitOverGoal(t *testing.T) {
	h := habitWithCompletions(2, 1, 2, 3)
	got := ForHabit(h, 2024, time.March)
	assert.Equal(t, 3, got.Completed)
	assert.Equal(t, -1, got.Left, "Left is not clamped")
	assert.Equal(t, 150, got.Percentage, "Percentage may exceed 100")
}

// A zero or negative goal yields percentage 0 instead of a division
// fault. This is a chosen contract, not inherited behavior: the
// original dashboard never guarded it.
func TestForHabitZeroGoal(t *testing.T) {
	h := habitWithCompletions(0, 1, 2)
	got := ForHabit(h, 2024, time.March)
	assert.Equal(t, 2, got.Completed)
	assert.Equal(t, 0, got.Percentage)

	h.Goal = -5
	assert.Equal(t, 0, ForHabit(h, 2024, time.March).Percentage)
}

func TestMonthlyMatchesPerHabitSums(t *testing.T) {
	a := habitWithCompletions(30, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := habitWithCompletions(20, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	habits := []store.Habit{a, b}

	got := Monthly(habits, 2024, time.March)
	assert.Equal(t, 25, got.Completed)
	assert.Equal(t, 50, got.Total)
	assert.Equal(t, 50, got.Percentage)

	sum := 0
	for _, h := range habits {
		sum += ForHabit(h, 2024, time.March).Completed
	}
	assert.Equal(t, got.Completed, sum)
}

func TestMonthlyNoHabits(t *testing.T) {
	got := Monthly(nil, 2024, time.March)
	assert.Equal(t, MonthlySummary{}, got)
}

func TestMonthlyRoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5% -> 13.
	h := habitWithCompletions(8, 1)
	got := Monthly([]store.Habit{h}, 2024, time.March)
	assert.Equal(t, 13, got.Percentage)
}

func TestDailyTrendLength(t *testing.T) {
	require.Len(t, DailyTrend(nil, 2024, time.January), 31)
	require.Len(t, DailyTrend(nil, 2024, time.February), 29)
	require.Len(t, DailyTrend(nil, 2023, time.February), 28)
}

func TestDailyTrendValues(t *testing.T) {
	a := habitWithCompletions(30, 1)
	b := habitWithCompletions(30, 1, 2)
	trend := DailyTrend([]store.Habit{a, b}, 2024, time.March)

	assert.Equal(t, 1, trend[0].Day)
	assert.Equal(t, 100, trend[0].Percentage)
	assert.Equal(t, 50, trend[1].Percentage)
	assert.Equal(t, 0, trend[2].Percentage)
}

func TestDailyTrendNoHabitsIsAllZero(t *testing.T) {
	for _, p := range DailyTrend(nil, 2024, time.March) {
		assert.Equal(t, 0, p.Percentage)
	}
}

func TestMonthlyTrendFutureMonthsAreZero(t *testing.T) {
	h := habitWithCompletions(30, 1, 2, 3)
	h.Completions[dateutil.Key(2024, time.August, 1)] = true

	trend := MonthlyTrend([]store.Habit{h}, 2024, time.June)
	require.Len(t, trend, 12)
	for m := time.July; m <= time.December; m++ {
		assert.Equal(t, 0, trend[m-1].Percentage, "month %s", m)
	}
	// March: 3 completions over 31 day-slots -> round(9.67) = 10.
	assert.Equal(t, 10, trend[time.March-1].Percentage)
	assert.Equal(t, time.March, trend[time.March-1].Month)
}

func TestMonthlyTrendNoHabits(t *testing.T) {
	trend := MonthlyTrend(nil, 2024, time.December)
	require.Len(t, trend, 12)
	for _, p := range trend {
		assert.Equal(t, 0, p.Percentage)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC)
	a := habitWithCompletions(30, 1, 2)
	b := habitWithCompletions(30, 1)
	c := habitWithCompletions(30)

	got := Today([]store.Habit{a, b, c}, now)
	assert.Equal(t, 1, got.Completed)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Left)
	assert.Equal(t, 33, got.Percentage)
}

func TestTodayNoHabits(t *testing.T) {
	got := Today(nil, time.Now())
	assert.Equal(t, 0, got.Percentage)
	assert.Equal(t, 0, got.Left)
}

func TestTopHabits(t *testing.T) {
	low := habitWithCompletions(30, 1)
	high := habitWithCompletions(30, 1, 2, 3, 4, 5)
	mid := habitWithCompletions(30, 1, 2)

	top := TopHabits([]store.Habit{low, high, mid}, 2024, time.March, 2)
	require.Len(t, top, 2)
	assert.Equal(t, high.Completions, top[0].Habit.Completions)
	assert.Equal(t, 5, top[0].Stats.Completed)
	assert.Equal(t, 2, top[1].Stats.Completed)
}
