package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/xslog"
)

func goalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal <type> <value>",
		Short: "Set today's progress for a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			in, err := parseGoalArgs(args)
			if err != nil {
				return err
			}

			a, err := openApp(ctx, xslog.NewLoggerFromEnv(os.Stderr))
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			a.tracker.UpdateGoalProgress(ctx, in.goalType, in.value)
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s\n",
				in.goalType, a.tracker.Today(), strconv.FormatFloat(in.value, 'f', -1, 64))
			return nil
		},
	}
}
