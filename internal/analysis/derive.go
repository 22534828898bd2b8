package analysis

import "energy-advisor/internal/model"

// DaysPerMonth is the fixed billing convention used for monthly figures,
// independent of calendar month length.
const DaysPerMonth = 30

// derive computes per-appliance energy and cost from validated records.
// Shares, categories and hog flags are filled in by classify.
//
//	daily_kwh    = wattage * hours_per_day * quantity / 1000
//	monthly_kwh  = daily_kwh * 30
//	monthly_cost = monthly_kwh * rate_per_kwh
func derive(records []model.ApplianceRecord, ratePerKWh float64) []model.ApplianceMetrics {
	metrics := make([]model.ApplianceMetrics, 0, len(records))
	for _, rec := range records {
		dailyKWh := rec.Wattage * rec.HoursPerDay * float64(rec.Quantity) / 1000
		monthlyKWh := dailyKWh * DaysPerMonth
		metrics = append(metrics, model.ApplianceMetrics{
			Record:      rec,
			DailyKWh:    dailyKWh,
			MonthlyKWh:  monthlyKWh,
			MonthlyCost: monthlyKWh * ratePerKWh,
		})
	}
	return metrics
}
