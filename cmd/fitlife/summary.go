package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/fitlife/internal/tracking"
	"github.com/garrettladley/fitlife/internal/workout"
	"github.com/garrettladley/fitlife/internal/xslog"
)

type summary struct {
	day         string
	completions []tracking.CompletionRecord
	goals       map[string]float64
	darkMode    bool
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today's exercises and goal progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx, xslog.NewLoggerFromEnv(os.Stderr))
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			s := loadSummary(ctx, a.tracker, a.prefs)
			writeSummary(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// loadSummary reads today's data concurrently. The tracker and preference
// readers are fail-soft, so Wait only joins the fan-out.
func loadSummary(ctx context.Context, tracker *tracking.Tracker, prefs *tracking.Preferences) summary {
	s := summary{day: tracker.Today()}

	var g errgroup.Group
	g.Go(func() error {
		s.completions = tracker.CompletionsOn(ctx, s.day)
		return nil
	})
	g.Go(func() error {
		s.goals = tracker.GoalProgress(ctx)[s.day]
		return nil
	})
	g.Go(func() error {
		s.darkMode = prefs.DarkMode(ctx)
		return nil
	})
	_ = g.Wait()

	return s
}

func writeSummary(w io.Writer, s summary) {
	var total time.Duration
	for _, r := range s.completions {
		total += r.Duration()
	}

	fmt.Fprintf(w, "%s (%s theme)\n", s.day, themeName(s.darkMode))
	fmt.Fprintf(w, "  exercises: %d (%s)\n", len(s.completions), workout.Format(total))
	if len(s.goals) == 0 {
		fmt.Fprintln(w, "  goals: none")
		return
	}
	fmt.Fprintln(w, "  goals:")
	for _, goalType := range slices.Sorted(maps.Keys(s.goals)) {
		fmt.Fprintf(w, "    %s: %s\n", goalType, strconv.FormatFloat(s.goals[goalType], 'f', -1, 64))
	}
}
