package analysis

import (
	"math"

	"energy-advisor/internal/model"
)

// DefaultRatePerKWh is the tariff applied when the caller supplies none,
// in currency units per kWh.
const DefaultRatePerKWh = 6.5

// TopConsumerLimit caps the ranked top-consumers list in a result.
const TopConsumerLimit = 5

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes one analysis over validated appliance records.
//
// The run is a pure function of its inputs: derive energy and cost per
// appliance, classify shares against the run total, then score the
// distribution. An empty record set yields the degenerate result (all
// totals zero, score 100) rather than an error. An invalid rate is
// rejected with a ConfigError before any derivation happens.
func (e *Engine) Run(records []model.ApplianceRecord, ratePerKWh float64) (*model.AnalysisResult, error) {
	if math.IsNaN(ratePerKWh) || math.IsInf(ratePerKWh, 0) || ratePerKWh <= 0 {
		return nil, &ConfigError{
			Field:   "rate_per_kwh",
			Message: "rate must be a positive, finite number",
		}
	}

	metrics := derive(records, ratePerKWh)
	totalMonthly := classify(metrics)

	result := &model.AnalysisResult{
		PerAppliance:    metrics,
		TotalMonthlyKWh: totalMonthly,
		ApplianceCount:  len(metrics),
		EfficiencyScore: Score(metrics),
		Balance:         BalanceLabel(metrics),
		TopConsumers:    topConsumers(metrics, TopConsumerLimit),
		RatePerKWh:      ratePerKWh,
	}

	for _, m := range metrics {
		result.TotalDailyKWh += m.DailyKWh
		result.TotalMonthlyCost += m.MonthlyCost
		result.TotalWattage += m.Record.ConnectedWattage()
	}
	if len(metrics) > 0 {
		result.AvgDailyKWh = result.TotalDailyKWh / float64(len(metrics))
	}

	return result, nil
}

// RunRows loads raw rows and runs the analysis in one call. Rejected rows
// are returned alongside the result so callers can proceed with the good
// data and still report what was skipped.
func (e *Engine) RunRows(rows []model.RawRow, ratePerKWh float64) (*model.AnalysisResult, []RowError, error) {
	records, rowErrs := Load(rows)
	result, err := e.Run(records, ratePerKWh)
	if err != nil {
		return nil, nil, err
	}
	return result, rowErrs, nil
}
