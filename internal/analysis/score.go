package analysis

import (
	"math"

	"energy-advisor/internal/model"
)

// PerfectScore is the defined fallback when there is no variation to
// penalize: fewer than two appliances, or zero mean consumption.
const PerfectScore = 100.0

// balancedCVLimit splits Balanced from Unbalanced distributions.
const balancedCVLimit = 50.0

// Score computes the 0..100 efficiency score from per-appliance monthly
// consumption. It is a balance metric, not a literal energy-efficiency
// measurement: it rewards evenly distributed consumption (low coefficient
// of variation) and penalizes a single dominant load.
func Score(metrics []model.ApplianceMetrics) float64 {
	cv, ok := coefficientOfVariation(metrics)
	if !ok {
		return PerfectScore
	}
	return math.Max(0, 100-cv)
}

// BalanceLabel labels the distribution Balanced when the coefficient of
// variation is below 50%, Unbalanced otherwise.
func BalanceLabel(metrics []model.ApplianceMetrics) string {
	cv, ok := coefficientOfVariation(metrics)
	if !ok || cv < balancedCVLimit {
		return model.BalanceBalanced
	}
	return model.BalanceUnbalanced
}

// coefficientOfVariation returns the population CV of monthly kWh as a
// percentage. ok is false when the value is undefined (fewer than two
// appliances or zero mean).
func coefficientOfVariation(metrics []model.ApplianceMetrics) (cv float64, ok bool) {
	if len(metrics) < 2 {
		return 0, false
	}

	values := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		values = append(values, m.MonthlyKWh)
	}

	mean := calculateMean(values)
	if mean == 0 {
		return 0, false
	}

	return (calculateStdDev(values, mean) / mean) * 100, true
}

// calculateMean calculates the mean of a slice of float64 values
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// calculateStdDev calculates the population standard deviation
func calculateStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sumSquaredDiff := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	variance := sumSquaredDiff / float64(len(values))
	return math.Sqrt(variance)
}
