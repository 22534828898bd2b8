package analysis

import (
	"sort"

	"energy-advisor/internal/model"
)

// classify fills in share-of-total, category and the energy-hog flag for
// every metric in place, and returns the total monthly kWh.
//
// When the total is zero every share is zero, every appliance lands in the
// Low tier, and nothing is flagged a hog.
func classify(metrics []model.ApplianceMetrics) (total float64) {
	for _, m := range metrics {
		total += m.MonthlyKWh
	}

	for i := range metrics {
		share := 0.0
		if total > 0 {
			share = metrics[i].MonthlyKWh / total
		}
		metrics[i].ShareOfTotal = share
		metrics[i].Category = model.CategoryFromShare(share)
		metrics[i].EnergyHog = model.IsEnergyHog(share)
	}

	return total
}

// topConsumers returns up to n metrics sorted descending by monthly kWh.
// Ties keep input order, so a fixed input always ranks identically.
func topConsumers(metrics []model.ApplianceMetrics, n int) []model.ApplianceMetrics {
	top := make([]model.ApplianceMetrics, len(metrics))
	copy(top, metrics)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].MonthlyKWh > top[j].MonthlyKWh
	})
	if n > 0 && n < len(top) {
		top = top[:n]
	}
	return top
}
