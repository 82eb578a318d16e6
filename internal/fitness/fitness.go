package fitness

import (
	"errors"
	"math"
	"strings"
)

const DefaultWeightKg = 70.0

var ErrInvalidMeasurement = errors.New("height and weight must be positive")

type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

// BMI is weight in kilograms over height in meters squared.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurement
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

func CategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// MET values by activity; unknown activities use defaultMET.
var metValues = map[string]float64{
	"running":  11.5,
	"cycling":  8.0,
	"swimming": 10.0,
	"walking":  3.8,
	"strength": 6.0,
	"yoga":     3.0,
}

const defaultMET = 5.0

func MET(exercise string) float64 {
	if met, ok := metValues[strings.ToLower(strings.TrimSpace(exercise))]; ok {
		return met
	}
	return defaultMET
}

// CaloriesBurned estimates kcal for minutes of exercise. A non-positive
// weight falls back to DefaultWeightKg.
func CaloriesBurned(exercise string, minutes, weightKg float64) int {
	if weightKg <= 0 {
		weightKg = DefaultWeightKg
	}
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(MET(exercise) * weightKg * (minutes / 60)))
}
