package model

// ApplianceMetrics is the derived view of one ApplianceRecord.
// All values are full precision; rounding is a presentation concern.
type ApplianceMetrics struct {
	Record ApplianceRecord

	DailyKWh    float64
	MonthlyKWh  float64
	MonthlyCost float64

	// ShareOfTotal is MonthlyKWh divided by the run's total monthly kWh,
	// in [0,1]. Zero when the run total is zero.
	ShareOfTotal float64
	Category     Category
	EnergyHog    bool
}

// Balance labels for the consumption distribution.
const (
	BalanceBalanced   = "Balanced"
	BalanceUnbalanced = "Unbalanced"
)

// Bill comparison accuracy labels.
const (
	AccuracyGood = "Good"
	AccuracyFair = "Fair"
	AccuracyPoor = "Poor"
)

// BillComparison compares the calculated monthly consumption against the
// metered units stated on an actual bill.
type BillComparison struct {
	BillUnits         float64 `json:"bill_units"`
	CalculatedKWh     float64 `json:"calculated_kwh"`
	Difference        float64 `json:"difference"`
	DifferencePercent float64 `json:"difference_percent"`
	Accuracy          string  `json:"accuracy"`
}

// AnalysisResult is the aggregate output of one analysis run.
// PerAppliance preserves input order; TopConsumers is sorted descending by
// monthly kWh. The result is constructed once per run and never mutated.
type AnalysisResult struct {
	PerAppliance []ApplianceMetrics

	TotalDailyKWh    float64
	TotalMonthlyKWh  float64
	TotalMonthlyCost float64
	AvgDailyKWh      float64

	ApplianceCount int
	TotalWattage   float64

	// EfficiencyScore is a 0..100 balance metric derived from the
	// coefficient of variation of per-appliance monthly consumption.
	// Higher means more evenly distributed load, not lower total usage.
	EfficiencyScore float64
	Balance         string

	TopConsumers []ApplianceMetrics

	RatePerKWh float64

	// Bill is non-nil only when the caller supplied metered bill units.
	Bill *BillComparison
}
