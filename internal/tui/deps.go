package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/fitlife/internal/tracking"
	"github.com/garrettladley/fitlife/internal/workout"
)

type Deps struct {
	Ctx        context.Context
	Logger     *slog.Logger
	Timer      *workout.Timer
	Display    *ChanDisplay
	Tracker    *tracking.Tracker
	ExerciseID string
	DarkMode   bool
	Version    string
}
