package workout

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/fitlife/internal/xslog"
)

const DefaultTickInterval = time.Second

// Scheduler arms a periodic callback. The returned stop func cancels it;
// a callback already in flight may still run once after stop returns.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func(), err error)
}

// Display receives the formatted elapsed time.
type Display interface {
	SetText(text string)
}

type State uint8

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

type Snapshot struct {
	State   State
	Elapsed time.Duration
	Running bool
}

// Timer accumulates active workout time across start/pause cycles.
// All methods are safe for concurrent use; the display is written while
// the timer's lock is held, so a Display must not call back into the Timer.
type Timer struct {
	mu sync.Mutex

	startEpoch time.Time
	elapsed    time.Duration
	running    bool
	stop       func()

	clock     clockwork.Clock
	scheduler Scheduler
	display   Display
	interval  time.Duration
	logger    *slog.Logger
}

type Option func(*Timer)

func WithClock(c clockwork.Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

func WithDisplay(d Display) Option {
	return func(t *Timer) {
		t.display = d
	}
}

func WithTickInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

func NewTimer(scheduler Scheduler, opts ...Option) *Timer {
	t := &Timer{
		clock:     clockwork.NewRealClock(),
		scheduler: scheduler,
		interval:  DefaultTickInterval,
		logger:    xslog.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins or resumes accumulating time. It is a no-op while running.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}

	stop, err := t.scheduler.Every(t.interval, t.tick)
	if err != nil {
		t.logger.Error("failed to arm workout timer tick", xslog.Interval(t.interval), xslog.Error(err))
		return
	}

	t.startEpoch = t.clock.Now().Add(-t.elapsed)
	t.running = true
	t.stop = stop
}

// Pause freezes the elapsed time. It is a no-op unless running.
func (t *Timer) Pause() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	stop := t.detachTick()
	t.running = false
	t.mu.Unlock()

	stop()
}

// Reset stops the timer, zeroes it, and shows 00:00.
func (t *Timer) Reset() {
	t.mu.Lock()
	stop := t.detachTick()
	t.startEpoch = time.Time{}
	t.elapsed = 0
	t.running = false
	t.refresh()
	t.mu.Unlock()

	stop()
}

func (t *Timer) tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	// late delivery from a cancelled schedule
	if !t.running {
		return
	}

	if d := t.clock.Since(t.startEpoch); d > t.elapsed {
		t.elapsed = d
	}
	t.refresh()
}

// detachTick clears the tick handle and returns its stop func, to be
// called once the lock is released.
func (t *Timer) detachTick() func() {
	stop := t.stop
	t.stop = nil
	if stop == nil {
		return func() {}
	}
	return stop
}

func (t *Timer) refresh() {
	if t.display == nil {
		return
	}
	t.display.SetText(Format(t.elapsed))
}

func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{State: t.state(), Elapsed: t.elapsed, Running: t.running}
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state()
}

func (t *Timer) state() State {
	switch {
	case t.running:
		return StateRunning
	case t.elapsed > 0:
		return StatePaused
	default:
		return StateIdle
	}
}

// Format renders d as MM:SS. Minutes are not capped at 60.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	seconds := int64((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
