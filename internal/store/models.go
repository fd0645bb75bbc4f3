package store

import "time"

// Habit is a tracked activity with a monthly goal. Completions maps a
// date key (YYYY-MM-DD) to done/not-done; an absent key means false.
// The JSON field names are the persisted wire format and must not change.
type Habit struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Emoji       string          `json:"emoji"`
	Goal        int             `json:"goal"`
	Completions map[string]bool `json:"completions"`
}

// Done reports whether the habit was completed on the given date key.
func (h Habit) Done(dateKey string) bool {
	return h.Completions[dateKey]
}

// Note is a free-form note. Date, when set, attaches the note to a
// calendar date; an empty Date marks a quick note.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Date      string    `json:"date,omitempty"`
}

// Quick reports whether the note is an undated quick note.
func (n Note) Quick() bool {
	return n.Date == ""
}
