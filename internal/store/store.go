// Package store owns the habit and note collections: the single source
// of truth the dashboard renders from. Every mutator updates memory,
// rewrites the whole collection to durable storage under its fixed key,
// and then notifies subscribers, so memory and storage never diverge
// once a call returns.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"habitflow/internal/dateutil"
	"habitflow/internal/storage"
)

// Storage keys. AccentKey holds the dashboard's accent color preference;
// it shares the kv mechanism but is owned by the presentation layer.
const (
	HabitsKey = "habit-tracker-habits"
	NotesKey  = "habit-tracker-notes"
	AccentKey = "miniCalendarBadgeColor"
)

// DefaultGoal is the monthly goal applied when the caller does not
// choose one.
const DefaultGoal = 30

var (
	ErrEmptyName = errors.New("habit name is required")
	ErrEmptyText = errors.New("note text is required")
)

// Store holds both collections in memory, backed by a kv row per
// collection. Construct it with Open; there is no package-level state.
type Store struct {
	mu     sync.Mutex
	kv     *storage.KV
	logger *slog.Logger

	habits []Habit
	notes  []Note

	subsMu  sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Open loads both collections. A missing or unparseable collection is
// replaced by its default (the starter habits, an empty note list); a
// parse failure is logged since it discards whatever was stored.
func Open(ctx context.Context, kv *storage.KV, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger, subs: map[int]func(){}}

	seeded := map[string]string{}

	raw, ok, err := kv.Get(ctx, HabitsKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.habits); err != nil {
			logger.Warn("discarding unparseable habit collection", "key", HabitsKey, "err", err)
			s.habits = nil
		}
	}
	if s.habits == nil {
		s.habits = DefaultHabits()
		blob, err := encode(s.habits)
		if err != nil {
			return nil, err
		}
		seeded[HabitsKey] = blob
	}
	for i := range s.habits {
		if s.habits[i].Completions == nil {
			s.habits[i].Completions = map[string]bool{}
		}
	}

	raw, ok, err = kv.Get(ctx, NotesKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.notes); err != nil {
			logger.Warn("discarding unparseable note collection", "key", NotesKey, "err", err)
			s.notes = nil
		}
	}
	if s.notes == nil {
		s.notes = []Note{}
		blob, err := encode(s.notes)
		if err != nil {
			return nil, err
		}
		seeded[NotesKey] = blob
	}

	if len(seeded) > 0 {
		if err := kv.SetMany(ctx, seeded); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode collection: %w", err)
	}
	return string(b), nil
}

// Habits returns a snapshot copy of the habit collection. Mutating the
// returned slice or its completion maps does not touch the store.
func (s *Store) Habits() []Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Habit, len(s.habits))
	for i, h := range s.habits {
		h.Completions = maps.Clone(h.Completions)
		out[i] = h
	}
	return out
}

// Notes returns a snapshot copy of the note collection, newest first.
func (s *Store) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// QuickNotes returns the undated notes, newest first.
func (s *Store) QuickNotes() []Note {
	var out []Note
	for _, n := range s.Notes() {
		if n.Quick() {
			out = append(out, n)
		}
	}
	return out
}

// NotesFor returns the notes attached to the given date key, newest first.
func (s *Store) NotesFor(dateKey string) []Note {
	var out []Note
	for _, n := range s.Notes() {
		if n.Date == dateKey {
			out = append(out, n)
		}
	}
	return out
}

// Subscribe registers fn to run synchronously after every successful
// mutation+persist cycle. The returned func cancels the subscription.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()
	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// notify runs outside the collection mutex so subscribers may read the
// store from their callback.
func (s *Store) notify() {
	s.subsMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *Store) persistHabits(ctx context.Context) error {
	blob, err := encode(s.habits)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, HabitsKey, blob)
}

func (s *Store) persistNotes(ctx context.Context) error {
	blob, err := encode(s.notes)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, NotesKey, blob)
}

// AddHabit appends a habit with an empty completion map and persists.
// Validation belongs to callers, but a whitespace-only name is rejected
// here too since nothing else guarantees it.
func (s *Store) AddHabit(ctx context.Context, name, emoji string, goal int) (Habit, error) {
	if strings.TrimSpace(name) == "" {
		return Habit{}, ErrEmptyName
	}
	if goal <= 0 {
		goal = DefaultGoal
	}
	h := Habit{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Emoji:       emoji,
		Goal:        goal,
		Completions: map[string]bool{},
	}

	s.mu.Lock()
	prev := s.habits
	s.habits = append(s.habits, h)
	if err := s.persistHabits(ctx); err != nil {
		s.habits = prev
		s.mu.Unlock()
		return Habit{}, err
	}
	s.mu.Unlock()
	s.notify()
	return h, nil
}

// DeleteHabit removes the habit with the given id. An unknown id is a
// no-op, not an error, and issues no write.
func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := make([]Habit, 0, len(s.habits))
	for _, h := range s.habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(s.habits) {
		s.mu.Unlock()
		return nil
	}
	prev := s.habits
	s.habits = kept
	if err := s.persistHabits(ctx); err != nil {
		s.habits = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// ToggleCompletion flips the completion flag for the habit on the given
// date key. Absent counts as false, so the first toggle sets true and a
// second restores the original state. Unknown habit ids are no-ops.
func (s *Store) ToggleCompletion(ctx context.Context, habitID, dateKey string) error {
	s.mu.Lock()
	for i := range s.habits {
		if s.habits[i].ID != habitID {
			continue
		}
		if s.habits[i].Completions == nil {
			s.habits[i].Completions = map[string]bool{}
		}
		s.habits[i].Completions[dateKey] = !s.habits[i].Completions[dateKey]
		if err := s.persistHabits(ctx); err != nil {
			s.habits[i].Completions[dateKey] = !s.habits[i].Completions[dateKey]
			s.mu.Unlock()
			return err
		}
		s.mu.Unlock()
		s.notify()
		return nil
	}
	s.mu.Unlock()
	return nil
}

// AddNote prepends a note (newest first) and persists. A date longer
// than YYYY-MM-DD is truncated to its date portion; an empty date makes
// a quick note.
func (s *Store) AddNote(ctx context.Context, text, date string) (Note, error) {
	if strings.TrimSpace(text) == "" {
		return Note{}, ErrEmptyText
	}
	n := Note{
		ID:        uuid.New().String(),
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now(),
		Date:      dateutil.NormalizeKey(date),
	}

	s.mu.Lock()
	prev := s.notes
	s.notes = append([]Note{n}, s.notes...)
	if err := s.persistNotes(ctx); err != nil {
		s.notes = prev
		s.mu.Unlock()
		return Note{}, err
	}
	s.mu.Unlock()
	s.notify()
	return n, nil
}

// DeleteNote removes the note with the given id; unknown ids are no-ops.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(s.notes) {
		s.mu.Unlock()
		return nil
	}
	prev := s.notes
	s.notes = kept
	if err := s.persistNotes(ctx); err != nil {
		s.notes = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notify()
	return nil
}
