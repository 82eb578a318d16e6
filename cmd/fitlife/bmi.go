package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/fitlife/internal/fitness"
)

func bmiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bmi <weight-kg> <height-cm>",
		Short: "Compute body mass index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBodyArgs(args)
			if err != nil {
				return err
			}
			bmi, err := fitness.BMI(in.weightKg, in.heightCm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BMI %.1f (%s)\n", bmi, fitness.CategoryFor(bmi))
			return nil
		},
	}
}
