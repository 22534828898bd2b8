package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"energy-advisor/internal/model"
)

func TestCategoryFromShare(t *testing.T) {
	tests := []struct {
		name  string
		share float64
		want  model.Category
	}{
		{"dominant load", 0.50, model.CategoryHigh},
		{"just above high threshold", 0.200001, model.CategoryHigh},
		{"exactly high threshold", 0.20, model.CategoryMedium},
		{"mid band", 0.12, model.CategoryMedium},
		{"exactly medium threshold", 0.05, model.CategoryLow},
		{"small load", 0.01, model.CategoryLow},
		{"zero share", 0, model.CategoryLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CategoryFromShare(tt.share))
		})
	}
}

func TestIsEnergyHog_StrictThreshold(t *testing.T) {
	assert.False(t, model.IsEnergyHog(0.10), "share at exactly 10%% is not a hog")
	assert.True(t, model.IsEnergyHog(0.100001))
	assert.False(t, model.IsEnergyHog(0.05))
}

func TestConnectedWattage(t *testing.T) {
	rec := model.ApplianceRecord{Name: "Fan", Wattage: 75, HoursPerDay: 12, Quantity: 3}
	assert.InDelta(t, 225.0, rec.ConnectedWattage(), 1e-9)
}
