package workout

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// manualScheduler records armed callbacks so tests can fire ticks by hand.
type manualScheduler struct {
	armed    int
	stopped  int
	active   func()
	interval time.Duration
	err      error
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) (func(), error) {
	if s.err != nil {
		return nil, s.err
	}
	s.armed++
	s.interval = interval
	s.active = fn
	return func() {
		s.stopped++
		s.active = nil
	}, nil
}

func (s *manualScheduler) fire() {
	if s.active != nil {
		s.active()
	}
}

type recordingDisplay struct {
	texts []string
}

func (d *recordingDisplay) SetText(text string) {
	d.texts = append(d.texts, text)
}

func (d *recordingDisplay) last() string {
	if len(d.texts) == 0 {
		return ""
	}
	return d.texts[len(d.texts)-1]
}

func newTestTimer() (*Timer, *clockwork.FakeClock, *manualScheduler, *recordingDisplay) {
	clock := clockwork.NewFakeClock()
	sched := &manualScheduler{}
	display := &recordingDisplay{}
	return NewTimer(sched, WithClock(clock), WithDisplay(display)), clock, sched, display
}

func TestTimer_InitialState(t *testing.T) {
	t.Parallel()

	timer, _, sched, _ := newTestTimer()
	snap := timer.Snapshot()
	if snap.State != StateIdle || snap.Elapsed != 0 {
		t.Errorf("Snapshot() = %+v, want idle at zero", snap)
	}
	if sched.armed != 0 {
		t.Errorf("scheduler armed %d times before start", sched.armed)
	}
}

func TestTimer_StartTicksAtConfiguredInterval(t *testing.T) {
	t.Parallel()

	timer, clock, sched, display := newTestTimer()
	timer.Start()

	if sched.interval != DefaultTickInterval {
		t.Errorf("tick interval = %v, want %v", sched.interval, DefaultTickInterval)
	}

	clock.Advance(1500 * time.Millisecond)
	sched.fire()

	if got := timer.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 1.5s", got)
	}
	if got := display.last(); got != "00:01" {
		t.Errorf("display = %q, want %q", got, "00:01")
	}
	if !timer.Running() || timer.Snapshot().State != StateRunning {
		t.Errorf("timer not running after Start()")
	}
}

func TestTimer_DoubleStartIsIdempotent(t *testing.T) {
	t.Parallel()

	timer, clock, sched, _ := newTestTimer()
	timer.Start()
	clock.Advance(3 * time.Second)
	sched.fire()
	before := timer.Snapshot()

	timer.Start()

	if sched.armed != 1 {
		t.Fatalf("scheduler armed %d times, want 1", sched.armed)
	}
	if after := timer.Snapshot(); after != before {
		t.Errorf("second Start() changed state: %+v -> %+v", before, after)
	}

	// epoch must not have moved: the next tick still counts from the first start
	clock.Advance(2 * time.Second)
	sched.fire()
	if got := timer.Elapsed(); got != 5*time.Second {
		t.Errorf("Elapsed() = %v, want 5s", got)
	}
}

func TestTimer_PauseFreezesElapsed(t *testing.T) {
	t.Parallel()

	timer, clock, sched, _ := newTestTimer()
	timer.Start()
	clock.Advance(10 * time.Second)
	sched.fire()

	timer.Pause()
	if sched.stopped != 1 {
		t.Fatalf("tick stopped %d times, want 1", sched.stopped)
	}
	if timer.Running() {
		t.Fatal("Running() = true after Pause()")
	}
	if got := timer.Snapshot().State; got != StatePaused {
		t.Errorf("State = %v, want paused", got)
	}

	clock.Advance(time.Minute)
	if got := timer.Elapsed(); got != 10*time.Second {
		t.Errorf("Elapsed() while paused = %v, want 10s", got)
	}
}

func TestTimer_PauseWhilePausedIsNoop(t *testing.T) {
	t.Parallel()

	timer, clock, sched, _ := newTestTimer()

	timer.Pause()
	if sched.stopped != 0 || timer.Running() {
		t.Fatalf("Pause() on idle timer had effect: stopped=%d", sched.stopped)
	}

	timer.Start()
	clock.Advance(4 * time.Second)
	sched.fire()
	timer.Pause()
	before := timer.Snapshot()

	timer.Pause()
	if sched.stopped != 1 {
		t.Errorf("tick stopped %d times, want 1", sched.stopped)
	}
	if after := timer.Snapshot(); after != before {
		t.Errorf("second Pause() changed state: %+v -> %+v", before, after)
	}
}

func TestTimer_ResumePreservesAccumulated(t *testing.T) {
	t.Parallel()

	timer, clock, sched, display := newTestTimer()
	timer.Start()
	clock.Advance(90 * time.Second)
	sched.fire()
	timer.Pause()

	clock.Advance(10 * time.Minute)

	timer.Start()
	clock.Advance(35 * time.Second)
	sched.fire()

	if got := timer.Elapsed(); got != 125*time.Second {
		t.Errorf("Elapsed() = %v, want 2m5s", got)
	}
	if got := display.last(); got != "02:05" {
		t.Errorf("display = %q, want %q", got, "02:05")
	}
}

func TestTimer_ResetFromAnyState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*Timer, *clockwork.FakeClock, *manualScheduler)
	}{
		{
			name:  "idle",
			setup: func(*Timer, *clockwork.FakeClock, *manualScheduler) {},
		},
		{
			name: "running",
			setup: func(tm *Timer, c *clockwork.FakeClock, s *manualScheduler) {
				tm.Start()
				c.Advance(42 * time.Second)
				s.fire()
			},
		},
		{
			name: "paused",
			setup: func(tm *Timer, c *clockwork.FakeClock, s *manualScheduler) {
				tm.Start()
				c.Advance(42 * time.Second)
				s.fire()
				tm.Pause()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			timer, clock, sched, display := newTestTimer()
			tt.setup(timer, clock, sched)

			timer.Reset()

			if snap := timer.Snapshot(); snap != (Snapshot{State: StateIdle}) {
				t.Errorf("Snapshot() = %+v, want idle at zero", snap)
			}
			if timer.Running() {
				t.Error("Running() = true after Reset()")
			}
			if sched.active != nil {
				t.Error("tick still armed after Reset()")
			}
			if got := display.last(); got != "00:00" {
				t.Errorf("display = %q, want %q", got, "00:00")
			}
		})
	}
}

func TestTimer_StartAfterResetCountsFromZero(t *testing.T) {
	t.Parallel()

	timer, clock, sched, _ := newTestTimer()
	timer.Start()
	clock.Advance(time.Hour)
	sched.fire()
	timer.Reset()

	timer.Start()
	clock.Advance(3 * time.Second)
	sched.fire()

	if got := timer.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed() = %v, want 3s", got)
	}
}

func TestTimer_LateTickAfterPauseIsIgnored(t *testing.T) {
	t.Parallel()

	timer, clock, sched, display := newTestTimer()
	timer.Start()
	late := sched.active
	clock.Advance(5 * time.Second)
	sched.fire()
	timer.Pause()
	writes := len(display.texts)

	clock.Advance(5 * time.Second)
	late()

	if got := timer.Elapsed(); got != 5*time.Second {
		t.Errorf("Elapsed() = %v, want 5s", got)
	}
	if len(display.texts) != writes {
		t.Errorf("display written after pause: %v", display.texts[writes:])
	}
}

func TestTimer_ElapsedNeverDecreases(t *testing.T) {
	t.Parallel()

	timer, clock, sched, _ := newTestTimer()
	timer.Start()

	var prev time.Duration
	for _, step := range []time.Duration{time.Second, 0, 250 * time.Millisecond, 2 * time.Second, 0} {
		clock.Advance(step)
		sched.fire()
		got := timer.Elapsed()
		if got < prev {
			t.Fatalf("Elapsed() decreased from %v to %v", prev, got)
		}
		prev = got
	}
}

func TestTimer_MissingDisplayIsTolerated(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	sched := &manualScheduler{}
	timer := NewTimer(sched, WithClock(clock))

	timer.Start()
	clock.Advance(2 * time.Second)
	sched.fire()
	timer.Reset()

	if got := timer.Elapsed(); got != 0 {
		t.Errorf("Elapsed() = %v, want 0", got)
	}
}

func TestTimer_SchedulerFailureLeavesTimerStopped(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{err: errors.New("scheduler shut down")}
	timer := NewTimer(sched, WithClock(clockwork.NewFakeClock()))

	timer.Start()

	if timer.Running() {
		t.Error("Running() = true although no tick could be armed")
	}
}

func TestTimer_WithTickInterval(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	timer := NewTimer(sched, WithTickInterval(250*time.Millisecond))
	timer.Start()
	t.Cleanup(timer.Reset)

	if sched.interval != 250*time.Millisecond {
		t.Errorf("tick interval = %v, want 250ms", sched.interval)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "zero", in: 0, want: "00:00"},
		{name: "sub second floors", in: 999 * time.Millisecond, want: "00:00"},
		{name: "seconds padded", in: 5 * time.Second, want: "00:05"},
		{name: "two minutes five", in: 125 * time.Second, want: "02:05"},
		{name: "fractional seconds floor", in: 125*time.Second + 999*time.Millisecond, want: "02:05"},
		{name: "minutes uncapped", in: 3661 * time.Second, want: "61:01"},
		{name: "three digit minutes", in: 100 * time.Minute, want: "100:00"},
		{name: "negative clamps", in: -time.Second, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	if got := StatePaused.String(); got != "paused" {
		t.Errorf("StatePaused.String() = %q", got)
	}
	if got := State(9).String(); got != "State(9)" {
		t.Errorf("State(9).String() = %q", got)
	}
}
