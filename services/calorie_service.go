package services

import (
	"math"
	"strings"
)

// Per-minute calorie burn rates for a 70kg person, a simplified stand-in for
// full MET calculations.
var activityCalorieRates = map[string]float64{
	"walking":  3.5,
	"running":  10.0,
	"cycling":  7.0,
	"gym":      6.0,
	"yoga":     2.5,
	"swimming": 8.0,
	"dancing":  4.5,
	"hiking":   5.0,
}

const defaultBurnRate = 5.0

// EstimateCaloriesBurned estimates calories burned for an activity, scaled
// by the user's weight around the 70kg baseline. Unknown activity tags use
// the default rate; a missing or non-positive weight falls back to 70kg.
func EstimateCaloriesBurned(activityType string, durationMinutes int, weightKg float64) float64 {
	if weightKg <= 0 {
		weightKg = 70.0
	}

	rate, ok := activityCalorieRates[strings.ToLower(activityType)]
	if !ok {
		rate = defaultBurnRate
	}

	calories := rate * float64(durationMinutes) * (weightKg / 70.0)
	return round2(calories)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
