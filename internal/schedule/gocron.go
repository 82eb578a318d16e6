package schedule

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/fitlife/internal/xslog"
)

// Gocron arms periodic callbacks as gocron duration jobs.
type Gocron struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
}

type Option func(*options)

type options struct {
	clock  clockwork.Clock
	logger *slog.Logger
}

func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewGocron creates and starts a scheduler. Call Shutdown when done.
func NewGocron(opts ...Option) (*Gocron, error) {
	o := options{
		logger: xslog.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var schedOpts []gocron.SchedulerOption
	if o.clock != nil {
		schedOpts = append(schedOpts, gocron.WithClock(o.clock))
	}

	s, err := gocron.NewScheduler(schedOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	s.Start()

	return &Gocron{
		scheduler: s,
		logger:    o.logger,
	}, nil
}

// Every runs fn every interval until the returned stop func is called.
// Overlapping runs are skipped rather than queued.
func (g *Gocron) Every(interval time.Duration, fn func()) (func(), error) {
	job, err := g.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create periodic job: %w", err)
	}

	id := job.ID()
	return func() {
		if err := g.scheduler.RemoveJob(id); err != nil {
			g.logger.Warn("failed to remove periodic job", slog.String("job_id", id.String()), xslog.Error(err))
		}
	}, nil
}

func (g *Gocron) Shutdown() error {
	return g.scheduler.Shutdown()
}
