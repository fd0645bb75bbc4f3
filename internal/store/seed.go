package store

// DefaultHabits returns the starter habits substituted when no habit
// collection exists yet (or the persisted one cannot be parsed).
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "1", Name: "Morning Workout", Emoji: "💪", Goal: 30, Completions: map[string]bool{}},
		{ID: "2", Name: "Read 20 Pages", Emoji: "📖", Goal: 30, Completions: map[string]bool{}},
		{ID: "3", Name: "Meditate", Emoji: "🧘", Goal: 30, Completions: map[string]bool{}},
		{ID: "4", Name: "Drink 8 Glasses", Emoji: "💧", Goal: 30, Completions: map[string]bool{}},
		{ID: "5", Name: "Learn Language", Emoji: "🗣️", Goal: 30, Completions: map[string]bool{}},
	}
}
