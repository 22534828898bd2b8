package advisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/analysis"
	"energy-advisor/internal/model"
)

func analyze(t *testing.T, records []model.ApplianceRecord) *model.AnalysisResult {
	t.Helper()
	result, err := analysis.New().Run(records, 6.5)
	require.NoError(t, err)
	return result
}

func TestRecommendations_HeaviestFirst(t *testing.T) {
	result := analyze(t, []model.ApplianceRecord{
		{Name: "Fridge", Wattage: 150, HoursPerDay: 24, Quantity: 1},
		{Name: "AC", Wattage: 1500, HoursPerDay: 8, Quantity: 2},
	})

	recs := advisor.Recommendations(result)
	require.Len(t, recs, 2, "both appliances exceed the 15%% share threshold")

	assert.Equal(t, "AC", recs[0].Appliance)
	assert.Contains(t, recs[0].Issue, "% of total energy")
	assert.Contains(t, recs[0].Action, "24-26°C")

	assert.Equal(t, "Fridge", recs[1].Appliance)
	assert.Contains(t, recs[1].Action, "door seals")
}

func TestRecommendations_BalancedLoadYieldsNone(t *testing.T) {
	// Ten identical appliances: each holds a 10% share, below the threshold.
	records := make([]model.ApplianceRecord, 10)
	for i := range records {
		records[i] = model.ApplianceRecord{Name: "Fan", Wattage: 75, HoursPerDay: 12, Quantity: 1}
	}

	recs := advisor.Recommendations(analyze(t, records))
	assert.Empty(t, recs)
}

func TestRecommendations_KeywordTemplates(t *testing.T) {
	tests := []struct {
		appliance string
		wantIn    string
	}{
		{"Air Conditioner", "timer mode"},
		{"Refrigerator", "defrost"},
		{"Water Heater", "solar heating"},
		{"Geyser", "insulate pipes"},
		{"Gaming PC", "energy-efficient alternatives"},
	}

	for _, tt := range tests {
		t.Run(tt.appliance, func(t *testing.T) {
			result := analyze(t, []model.ApplianceRecord{
				{Name: tt.appliance, Wattage: 2000, HoursPerDay: 6, Quantity: 1},
				{Name: "Lamp", Wattage: 10, HoursPerDay: 2, Quantity: 1},
			})

			recs := advisor.Recommendations(result)
			require.NotEmpty(t, recs)
			assert.Contains(t, recs[0].Action, tt.wantIn)
		})
	}
}

func TestRecommendations_NilResult(t *testing.T) {
	assert.Nil(t, advisor.Recommendations(nil))
}
