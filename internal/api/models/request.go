package models

import "energy-advisor/internal/model"

// AnalysisRequest represents the request body for running an analysis
type AnalysisRequest struct {
	Appliances []model.RawRow  `json:"appliances" binding:"required"`
	RatePerKWh float64         `json:"rate_per_kwh,omitempty"` // default: configured tariff
	BillUnits  float64         `json:"bill_units,omitempty"`   // metered units for comparison
	Options    AnalysisOptions `json:"options,omitempty"`
}

// AnalysisOptions contains optional analysis parameters
type AnalysisOptions struct {
	IncludeMetrics bool `json:"include_metrics,omitempty"` // default: false
}

// RecommendationsRequest represents a request for saving suggestions
type RecommendationsRequest struct {
	Appliances       []model.RawRow `json:"appliances" binding:"required"`
	RatePerKWh       float64        `json:"rate_per_kwh,omitempty"`
	ReductionPercent float64        `json:"reduction_percent,omitempty"` // default: configured target
}

// ChartsRequest represents a request to render analysis charts
type ChartsRequest struct {
	Appliances       []model.RawRow `json:"appliances" binding:"required"`
	RatePerKWh       float64        `json:"rate_per_kwh,omitempty"`
	ReductionPercent float64        `json:"reduction_percent,omitempty"`
}
