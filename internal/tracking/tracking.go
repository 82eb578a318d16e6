package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/fitlife/internal/persist"
)

const (
	CompletedExercisesKey = "completedExercises"
	GoalProgressKey       = "goalProgress"
	DarkModeKey           = "darkMode"
)

// DateLayout is the YYYY-MM-DD form used to bucket records by day.
const DateLayout = time.DateOnly

// CompletionRecord is one entry in the append-only exercise log. The JSON
// names match the log written by the web client.
type CompletionRecord struct {
	ExerciseID string `json:"exerciseId"`
	DurationMs int64  `json:"duration"`
	DateKey    string `json:"date"`
	Timestamp  int64  `json:"timestamp"`
}

func (r CompletionRecord) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// GoalProgress maps a date key to goal type to the latest value recorded that day.
type GoalProgress map[string]map[string]float64

// Tracker records timer-derived facts through a persist.Store. Within a
// process each read-modify-write is serialized; writers in other processes
// sharing the same store are not coordinated and the last write wins.
type Tracker struct {
	mu    sync.Mutex
	store *persist.Store
	clock clockwork.Clock
}

func New(store *persist.Store, clock clockwork.Clock) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Tracker{
		store: store,
		clock: clock,
	}
}

// DateKey returns the UTC calendar date of t.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func (t *Tracker) Today() string {
	return DateKey(t.clock.Now())
}

// TrackExerciseCompletion appends a completion for exerciseID to the log.
// Negative durations are recorded as zero.
func (t *Tracker) TrackExerciseCompletion(ctx context.Context, exerciseID string, durationMs int64) CompletionRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	record := CompletionRecord{
		ExerciseID: exerciseID,
		DurationMs: max(durationMs, 0),
		DateKey:    DateKey(now),
		Timestamp:  now.UnixMilli(),
	}

	entries, _ := persist.Load[[]CompletionRecord](ctx, t.store, CompletedExercisesKey)
	entries = append(entries, record)
	t.store.Save(ctx, CompletedExercisesKey, entries)

	return record
}

// UpdateGoalProgress sets today's value for goalType, replacing any value
// recorded earlier the same day.
func (t *Tracker) UpdateGoalProgress(ctx context.Context, goalType string, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, _ := persist.Load[GoalProgress](ctx, t.store, GoalProgressKey)
	if progress == nil {
		progress = GoalProgress{}
	}

	today := t.Today()
	if progress[today] == nil {
		progress[today] = map[string]float64{}
	}
	progress[today][goalType] = value

	t.store.Save(ctx, GoalProgressKey, progress)
}

// CompletedExercises returns the full log, oldest first.
func (t *Tracker) CompletedExercises(ctx context.Context) []CompletionRecord {
	entries, _ := persist.Load[[]CompletionRecord](ctx, t.store, CompletedExercisesKey)
	return entries
}

// CompletionsOn returns the log entries bucketed under dateKey.
func (t *Tracker) CompletionsOn(ctx context.Context, dateKey string) []CompletionRecord {
	var out []CompletionRecord
	for _, r := range t.CompletedExercises(ctx) {
		if r.DateKey == dateKey {
			out = append(out, r)
		}
	}
	return out
}

func (t *Tracker) GoalProgress(ctx context.Context) GoalProgress {
	progress, _ := persist.Load[GoalProgress](ctx, t.store, GoalProgressKey)
	if progress == nil {
		return GoalProgress{}
	}
	return progress
}
