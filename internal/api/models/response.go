package models

import (
	"energy-advisor/internal/advisor"
	"energy-advisor/internal/model"
)

// AnalysisResponse represents the response from an analysis run
type AnalysisResponse struct {
	ID          string       `json:"id,omitempty"`
	Status      string       `json:"status"`
	Summary     Summary      `json:"summary"`
	Appliances  []MetricsRow `json:"appliances,omitempty"`
	SkippedRows []SkippedRow `json:"skipped_rows,omitempty"`
}

// Summary contains aggregated analysis results
type Summary struct {
	TotalDailyKWh    float64               `json:"total_daily_kwh"`
	TotalMonthlyKWh  float64               `json:"total_monthly_kwh"`
	TotalMonthlyCost float64               `json:"total_monthly_cost"`
	AvgDailyKWh      float64               `json:"avg_daily_kwh"`
	ApplianceCount   int                   `json:"appliance_count"`
	TotalWattage     float64               `json:"total_wattage"`
	EfficiencyScore  float64               `json:"efficiency_score"`
	Balance          string                `json:"consumption_balance"`
	RatePerKWh       float64               `json:"rate_per_kwh"`
	TopConsumers     []TopConsumer         `json:"top_consumers"`
	Bill             *model.BillComparison `json:"bill_comparison,omitempty"`
}

// TopConsumer is one entry of the ranked top-consumers list
type TopConsumer struct {
	Appliance   string  `json:"appliance"`
	MonthlyKWh  float64 `json:"monthly_kwh"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// MetricsRow represents one appliance's derived metrics
type MetricsRow struct {
	Appliance    string  `json:"appliance"`
	Wattage      float64 `json:"wattage"`
	HoursPerDay  float64 `json:"hours_per_day"`
	Quantity     int     `json:"quantity"`
	DailyKWh     float64 `json:"daily_kwh"`
	MonthlyKWh   float64 `json:"monthly_kwh"`
	MonthlyCost  float64 `json:"monthly_cost"`
	ShareOfTotal float64 `json:"share_of_total"`
	Category     string  `json:"category"`
	EnergyHog    bool    `json:"energy_hog"`
}

// SkippedRow reports one rejected input row
type SkippedRow struct {
	Index   int    `json:"index"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// BillExtractResponse represents the response from bill extraction
type BillExtractResponse struct {
	Bill    model.BillData `json:"bill"`
	RawText string         `json:"raw_text,omitempty"`
}

// RecommendationsResponse bundles suggestions and the savings projection
type RecommendationsResponse struct {
	Recommendations []advisor.Recommendation   `json:"recommendations"`
	Savings         *advisor.SavingsProjection `json:"savings"`
}

// ChartsResponse carries rendered charts as base64 PNG
type ChartsResponse struct {
	SharePie   string `json:"share_pie_png"`
	MonthlyBar string `json:"monthly_bar_png"`
	SavingsBar string `json:"savings_bar_png,omitempty"`
}

// TariffInfo represents information about a tariff preset
type TariffInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	File       string  `json:"file"`
	RatePerKWh float64 `json:"rate_per_kwh"`
	Currency   string  `json:"currency"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
