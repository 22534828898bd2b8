package advisor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/model"
)

func TestProjectSavings_TwentyPercent(t *testing.T) {
	result := &model.AnalysisResult{
		TotalMonthlyKWh:  828,
		TotalMonthlyCost: 5382,
	}

	s, err := advisor.ProjectSavings(result, 20)
	require.NoError(t, err)

	assert.InDelta(t, 828.0, s.CurrentMonthlyKWh, 1e-9)
	assert.InDelta(t, 662.4, s.TargetMonthlyKWh, 1e-9)
	assert.InDelta(t, 165.6, s.MonthlyKWhSavings, 1e-9)
	assert.InDelta(t, 1076.4, s.MonthlyCostSavings, 1e-9)
	assert.InDelta(t, 12916.8, s.AnnualCostSavings, 1e-9)
	assert.Equal(t, 20.0, s.ReductionPercent)

	assert.InDelta(t, 165.6*0.82, s.CO2ReductionKg, 1e-9)
	assert.InDelta(t, 165.6*0.82*12, s.CO2ReductionAnnualKg, 1e-9)
	assert.InDelta(t, 165.6*0.82*12/22, s.TreesEquivalent, 1e-9)
}

func TestProjectSavings_RangeLimits(t *testing.T) {
	result := &model.AnalysisResult{TotalMonthlyKWh: 100, TotalMonthlyCost: 650}

	for _, pct := range []float64{5, 50} {
		_, err := advisor.ProjectSavings(result, pct)
		assert.NoError(t, err, "boundary %v is valid", pct)
	}

	for _, pct := range []float64{0, 4.9, 50.1, -20, math.NaN()} {
		s, err := advisor.ProjectSavings(result, pct)
		assert.Nil(t, s)
		assert.Error(t, err, "target %v is out of range", pct)
	}
}

func TestProjectSavings_ZeroConsumption(t *testing.T) {
	s, err := advisor.ProjectSavings(&model.AnalysisResult{}, 20)
	require.NoError(t, err)
	assert.Zero(t, s.MonthlyKWhSavings)
	assert.Zero(t, s.AnnualCostSavings)
	assert.Zero(t, s.TreesEquivalent)
}

func TestGeneralTips_Catalog(t *testing.T) {
	tips := advisor.GeneralTips()
	require.NotEmpty(t, tips)
	for _, tip := range tips {
		assert.NotEmpty(t, tip.Category)
		assert.NotEmpty(t, tip.Title)
		assert.NotEmpty(t, tip.Description)
	}
}
