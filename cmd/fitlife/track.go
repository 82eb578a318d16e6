package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/workout"
	"github.com/garrettladley/fitlife/internal/xslog"
)

func trackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <exercise> <duration>",
		Short: "Record a completed exercise",
		Long:  "Appends a completion to the exercise log. Duration is a Go duration (90s, 1m30s) or milliseconds.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			in, err := parseTrackArgs(args)
			if err != nil {
				return err
			}

			a, err := openApp(ctx, xslog.NewLoggerFromEnv(os.Stderr))
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			record := a.tracker.TrackExerciseCompletion(ctx, in.exerciseID, in.duration.Milliseconds())
			fmt.Fprintf(cmd.OutOrStdout(), "logged %s for %s on %s\n",
				record.ExerciseID, workout.Format(record.Duration()), record.DateKey)
			return nil
		},
	}
}
