package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "fitlife",
		Short:   "Workout timer and fitness log in your terminal",
		Version: version.Get(),
		RunE:    runTimer,
	}

	rootCmd.AddCommand(
		timerCmd(),
		trackCmd(),
		goalCmd(),
		historyCmd(),
		summaryCmd(),
		bmiCmd(),
		caloriesCmd(),
		themeCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
