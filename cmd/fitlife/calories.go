package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/config"
	"github.com/garrettladley/fitlife/internal/fitness"
)

func caloriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calories <exercise> <minutes>",
		Short: "Estimate calories burned",
		Long:  "Estimates calories from the exercise's MET value. Weight defaults to FITLIFE_WEIGHT_KG.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, _ := cmd.Flags().GetFloat64("weight")
			in, err := parseCaloriesArgs(args, weight)
			if err != nil {
				return err
			}
			if in.weightKg == 0 {
				in.weightKg = defaultWeight()
			}

			kcal := fitness.CaloriesBurned(in.exercise, in.minutes, in.weightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "%d kcal\n", kcal)
			return nil
		},
	}
	cmd.Flags().Float64("weight", 0, "body weight in kg")
	return cmd
}

// defaultWeight reads only the weight so a bad store setting does not
// block a pure calculation.
func defaultWeight() float64 {
	cfg, err := env.ParseAs[config.Config]()
	if err != nil || !finite(cfg.WeightKg) || cfg.WeightKg <= 0 {
		return fitness.DefaultWeightKg
	}
	return cfg.WeightKg
}
