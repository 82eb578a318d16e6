package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/tracking"
	"github.com/garrettladley/fitlife/internal/workout"
	"github.com/garrettladley/fitlife/internal/xslog"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			date, _ := cmd.Flags().GetString("date")
			if date != "" {
				if _, err := time.Parse(tracking.DateLayout, date); err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
				}
			}

			a, err := openApp(ctx, xslog.NewLoggerFromEnv(os.Stderr))
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var records []tracking.CompletionRecord
			if date == "" {
				records = a.tracker.CompletedExercises(ctx)
			} else {
				records = a.tracker.CompletionsOn(ctx, date)
			}
			writeHistory(cmd.OutOrStdout(), records)
			return nil
		},
	}
	cmd.Flags().String("date", "", "only show completions on this day (YYYY-MM-DD, UTC)")
	return cmd
}

func writeHistory(w io.Writer, records []tracking.CompletionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "no completed exercises")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "%s  %-16s %s\n", r.DateKey, r.ExerciseID, workout.Format(r.Duration()))
	}
}
