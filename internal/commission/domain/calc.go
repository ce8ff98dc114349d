package domain

import "math"

// Business formula parameters: 86.5% of the gross energy value, split evenly
// between the platform and the representative.
const (
	DefaultRate  = 0.865
	DefaultSplit = 2
)

// Calculate returns the commission owed for the given consumption snapshot:
// round2(kwh * rate * price / split). Pure; accepts any numeric inputs,
// validation is the caller's responsibility.
func Calculate(kwhConsumption, kwhPrice, rate, split float64) float64 {
	return Round2(kwhConsumption * rate * kwhPrice / split)
}

// Round2 rounds half away from zero to two decimal places, i.e. standard
// half-up rounding at the cent boundary for the non-negative values the
// formula produces.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
