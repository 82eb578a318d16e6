package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/garrettladley/fitlife/internal/validator"
)

var _ validator.Validator = trackArgs{}

type trackArgs struct {
	exerciseID string
	duration   time.Duration
}

// parseDuration accepts Go durations ("90s", "1m30s") or bare milliseconds.
func parseDuration(s string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}

func parseTrackArgs(args []string) (trackArgs, error) {
	d, err := parseDuration(args[1])
	if err != nil {
		return trackArgs{}, err
	}
	a := trackArgs{exerciseID: strings.TrimSpace(args[0]), duration: d}
	return a, validator.Validate(a)
}

func (a trackArgs) Validate() map[string]string {
	errs := map[string]string{}
	if a.exerciseID == "" {
		errs["exercise"] = "must not be empty"
	}
	if a.duration < 0 {
		errs["duration"] = "must not be negative"
	}
	return errs
}

var _ validator.Validator = goalArgs{}

type goalArgs struct {
	goalType string
	value    float64
}

func parseGoalArgs(args []string) (goalArgs, error) {
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return goalArgs{}, fmt.Errorf("invalid goal value %q: %w", args[1], err)
	}
	a := goalArgs{goalType: strings.TrimSpace(args[0]), value: v}
	return a, validator.Validate(a)
}

func (a goalArgs) Validate() map[string]string {
	errs := map[string]string{}
	if a.goalType == "" {
		errs["type"] = "must not be empty"
	}
	if !finite(a.value) {
		errs["value"] = "must be a finite number"
	}
	return errs
}

var _ validator.Validator = bodyArgs{}

type bodyArgs struct {
	weightKg float64
	heightCm float64
}

func parseBodyArgs(args []string) (bodyArgs, error) {
	w, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return bodyArgs{}, fmt.Errorf("invalid weight %q: %w", args[0], err)
	}
	h, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return bodyArgs{}, fmt.Errorf("invalid height %q: %w", args[1], err)
	}
	a := bodyArgs{weightKg: w, heightCm: h}
	return a, validator.Validate(a)
}

func (a bodyArgs) Validate() map[string]string {
	errs := map[string]string{}
	if !finite(a.weightKg) || a.weightKg <= 0 {
		errs["weight"] = "must be a positive finite number"
	}
	if !finite(a.heightCm) || a.heightCm <= 0 {
		errs["height"] = "must be a positive finite number"
	}
	return errs
}

var _ validator.Validator = caloriesArgs{}

type caloriesArgs struct {
	exercise string
	minutes  float64
	weightKg float64
}

// parseCaloriesArgs reads <exercise> <minutes>; weightKg comes from the
// --weight flag where 0 means unset.
func parseCaloriesArgs(args []string, weightKg float64) (caloriesArgs, error) {
	m, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return caloriesArgs{}, fmt.Errorf("invalid minutes %q: %w", args[1], err)
	}
	a := caloriesArgs{exercise: args[0], minutes: m, weightKg: weightKg}
	return a, validator.Validate(a)
}

func (a caloriesArgs) Validate() map[string]string {
	errs := map[string]string{}
	if !finite(a.minutes) {
		errs["minutes"] = "must be a finite number"
	}
	if !finite(a.weightKg) || a.weightKg < 0 {
		errs["weight"] = "must be a positive finite number"
	}
	return errs
}

// finite rejects NaN and ±Inf, which strconv.ParseFloat accepts.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
