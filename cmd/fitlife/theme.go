package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/xslog"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show, set, or toggle the dark-mode preference",
		Long:      "With no argument the preference is toggled.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx, xslog.NewLoggerFromEnv(os.Stderr))
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var dark bool
			if len(args) == 0 {
				dark = a.prefs.ToggleDarkMode(ctx)
			} else {
				dark = args[0] == "dark"
				a.prefs.SetDarkMode(ctx, dark)
			}

			fmt.Fprintln(cmd.OutOrStdout(), themeName(dark))
			return nil
		},
	}
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
