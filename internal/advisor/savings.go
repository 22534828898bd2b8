package advisor

import (
	"fmt"
	"math"

	"energy-advisor/internal/model"
)

// Savings projection constants.
const (
	// DefaultReductionPercent is the target applied when the caller
	// supplies none.
	DefaultReductionPercent = 20.0
	MinReductionPercent     = 5.0
	MaxReductionPercent     = 50.0

	// co2PerKWh is the grid emission factor in kg CO2 per kWh.
	co2PerKWh = 0.82
	// co2PerTreeYear is the approximate kg of CO2 one tree absorbs per year.
	co2PerTreeYear = 22.0
)

// SavingsProjection estimates what a consumption reduction would save.
type SavingsProjection struct {
	CurrentMonthlyKWh  float64 `json:"current_monthly_kwh"`
	CurrentMonthlyCost float64 `json:"current_monthly_cost"`
	TargetMonthlyKWh   float64 `json:"target_monthly_kwh"`
	TargetMonthlyCost  float64 `json:"target_monthly_cost"`
	MonthlyKWhSavings  float64 `json:"monthly_kwh_savings"`
	MonthlyCostSavings float64 `json:"monthly_cost_savings"`
	AnnualCostSavings  float64 `json:"annual_cost_savings"`
	ReductionPercent   float64 `json:"reduction_percentage"`

	CO2ReductionKg       float64 `json:"co2_reduction_kg"`
	CO2ReductionAnnualKg float64 `json:"co2_reduction_annual_kg"`
	TreesEquivalent      float64 `json:"trees_equivalent"`
}

// ProjectSavings computes the savings from reducing total consumption by
// reductionPercent. Valid targets are 5..50 percent.
func ProjectSavings(result *model.AnalysisResult, reductionPercent float64) (*SavingsProjection, error) {
	if math.IsNaN(reductionPercent) ||
		reductionPercent < MinReductionPercent || reductionPercent > MaxReductionPercent {
		return nil, fmt.Errorf("reduction percentage must be within %.0f..%.0f, got %v",
			MinReductionPercent, MaxReductionPercent, reductionPercent)
	}

	factor := 1 - reductionPercent/100
	targetKWh := result.TotalMonthlyKWh * factor
	targetCost := result.TotalMonthlyCost * factor

	kwhSavings := result.TotalMonthlyKWh - targetKWh
	costSavings := result.TotalMonthlyCost - targetCost
	co2 := kwhSavings * co2PerKWh

	return &SavingsProjection{
		CurrentMonthlyKWh:    result.TotalMonthlyKWh,
		CurrentMonthlyCost:   result.TotalMonthlyCost,
		TargetMonthlyKWh:     targetKWh,
		TargetMonthlyCost:    targetCost,
		MonthlyKWhSavings:    kwhSavings,
		MonthlyCostSavings:   costSavings,
		AnnualCostSavings:    costSavings * 12,
		ReductionPercent:     reductionPercent,
		CO2ReductionKg:       co2,
		CO2ReductionAnnualKg: co2 * 12,
		TreesEquivalent:      co2 * 12 / co2PerTreeYear,
	}, nil
}
