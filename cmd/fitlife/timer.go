package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/paths"
	"github.com/garrettladley/fitlife/internal/schedule"
	"github.com/garrettladley/fitlife/internal/session"
	"github.com/garrettladley/fitlife/internal/tui"
	"github.com/garrettladley/fitlife/internal/version"
	"github.com/garrettladley/fitlife/internal/workout"
	"github.com/garrettladley/fitlife/internal/xslog"
)

func timerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Launch the workout timer",
		Long:  "Opens the full-screen workout timer. Press c to log the elapsed time as a completed exercise.",
		RunE:  runTimer,
	}
	cmd.Flags().StringP("exercise", "e", "workout", "exercise id recorded when completing")
	return cmd
}

func runTimer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	exerciseID := "workout"
	if f := cmd.Flags().Lookup("exercise"); f != nil {
		exerciseID = f.Value.String()
	}

	if _, err := paths.EnsureDir(); err != nil {
		return err
	}
	logPath, err := paths.Log()
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	sessionID := session.NewID()
	logger := xslog.NewLoggerFromEnv(logFile).With(xslog.SessionID(sessionID))

	a, err := openApp(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	scheduler, err := schedule.NewGocron(schedule.WithClock(a.clock), schedule.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() { _ = scheduler.Shutdown() }()

	display := tui.NewChanDisplay()
	timer := workout.NewTimer(scheduler,
		workout.WithClock(a.clock),
		workout.WithDisplay(display),
		workout.WithTickInterval(a.cfg.TickInterval),
		workout.WithLogger(logger),
	)

	logger.InfoContext(ctx, "timer session started", xslog.ExerciseID(exerciseID))

	model := tui.New(tui.Deps{
		Ctx:        ctx,
		Logger:     logger,
		Timer:      timer,
		Display:    display,
		Tracker:    a.tracker,
		ExerciseID: exerciseID,
		DarkMode:   a.prefs.DarkMode(ctx),
		Version:    version.Get(),
	})

	p := tea.NewProgram(&model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	logger.InfoContext(ctx, "timer session ended")
	return nil
}
