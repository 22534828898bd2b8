// Package charts renders analysis results as PNG charts, returned as
// base64 strings for embedding in reports and API responses.
package charts

import (
	"encoding/base64"
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/model"
)

// Generator handles chart generation
type Generator struct {
	theme string
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		theme: "light",
	}
}

// ConsumptionSharePie creates a pie chart of each appliance's share of
// total monthly consumption.
func (g *Generator) ConsumptionSharePie(result *model.AnalysisResult) (string, error) {
	if result == nil || len(result.PerAppliance) == 0 {
		return "", fmt.Errorf("no appliance metrics available")
	}

	values := make([]float64, 0, len(result.PerAppliance))
	labels := make([]string, 0, len(result.PerAppliance))
	for _, m := range result.PerAppliance {
		values = append(values, m.MonthlyKWh)
		labels = append(labels, fmt.Sprintf("%s (%.1f%%)", m.Record.Name, m.ShareOfTotal*100))
	}

	p, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc("Monthly Consumption Share"),
		charts.LegendLabelsOptionFunc(labels, charts.PositionRight),
		charts.ThemeOptionFunc(g.theme),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(500),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render share chart: %w", err)
	}

	return encodeChart(p)
}

// MonthlyConsumptionBar creates a bar chart of monthly kWh per appliance.
func (g *Generator) MonthlyConsumptionBar(result *model.AnalysisResult) (string, error) {
	if result == nil || len(result.PerAppliance) == 0 {
		return "", fmt.Errorf("no appliance metrics available")
	}

	var values []float64
	var labels []string
	for _, m := range result.PerAppliance {
		values = append(values, m.MonthlyKWh)
		labels = append(labels, m.Record.Name)
	}

	p, err := charts.BarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc("Monthly Consumption by Appliance"),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc([]string{"Monthly kWh"}, charts.PositionRight),
		charts.ThemeOptionFunc(g.theme),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render consumption chart: %w", err)
	}

	return encodeChart(p)
}

// SavingsProjectionBar creates a grouped bar chart comparing current and
// target monthly consumption and cost.
func (g *Generator) SavingsProjectionBar(s *advisor.SavingsProjection) (string, error) {
	if s == nil {
		return "", fmt.Errorf("no savings projection available")
	}

	values := [][]float64{
		{s.CurrentMonthlyKWh, s.CurrentMonthlyCost},
		{s.TargetMonthlyKWh, s.TargetMonthlyCost},
	}

	p, err := charts.BarRender(
		values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Savings at %.0f%% Reduction", s.ReductionPercent)),
		charts.XAxisDataOptionFunc([]string{"Monthly kWh", "Monthly Cost"}),
		charts.LegendLabelsOptionFunc([]string{"Current", "Target"}, charts.PositionRight),
		charts.ThemeOptionFunc(g.theme),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render savings chart: %w", err)
	}

	return encodeChart(p)
}

// encodeChart converts a rendered chart to base64 for embedding.
func encodeChart(p *charts.Painter) (string, error) {
	buf, err := p.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
