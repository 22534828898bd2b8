package analysis

import (
	"math"

	"energy-advisor/internal/model"
)

// Accuracy bands for the calculated-vs-billed comparison, as percentage
// difference against the billed units.
const (
	goodAccuracyLimit = 15.0
	fairAccuracyLimit = 30.0
)

// CompareWithBill compares the calculated monthly consumption with the
// metered units stated on the bill. Returns nil when billUnits is not a
// positive number; the comparison is meaningless without a real reading.
func CompareWithBill(calculatedKWh, billUnits float64) *model.BillComparison {
	if math.IsNaN(billUnits) || billUnits <= 0 {
		return nil
	}

	diff := math.Abs(calculatedKWh - billUnits)
	diffPct := (diff / billUnits) * 100

	accuracy := model.AccuracyPoor
	switch {
	case diffPct < goodAccuracyLimit:
		accuracy = model.AccuracyGood
	case diffPct < fairAccuracyLimit:
		accuracy = model.AccuracyFair
	}

	return &model.BillComparison{
		BillUnits:         billUnits,
		CalculatedKWh:     calculatedKWh,
		Difference:        diff,
		DifferencePercent: diffPct,
		Accuracy:          accuracy,
	}
}
