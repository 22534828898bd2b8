package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-advisor/internal/analysis"
	"energy-advisor/internal/model"
)

func TestLoad_ValidRows(t *testing.T) {
	records, errs := analysis.Load([]model.RawRow{
		{Appliance: "  AC  ", Wattage: 1500, HoursPerDay: 8, Quantity: 2},
		{Appliance: "Fridge", Wattage: 150, HoursPerDay: 24, Quantity: 1},
	})

	require.Empty(t, errs)
	require.Len(t, records, 2)
	assert.Equal(t, "AC", records[0].Name, "name is trimmed")
	assert.Equal(t, 2, records[0].Quantity)
	assert.Equal(t, 24.0, records[1].HoursPerDay)
}

func TestLoad_RejectsBadRowsWithReasons(t *testing.T) {
	tests := []struct {
		name   string
		row    model.RawRow
		reason analysis.RowReason
	}{
		{"empty name", model.RawRow{Appliance: "   ", Wattage: 100, HoursPerDay: 1, Quantity: 1}, analysis.ReasonMissingName},
		{"zero wattage", model.RawRow{Appliance: "X", Wattage: 0, HoursPerDay: 1, Quantity: 1}, analysis.ReasonNonPositiveWattage},
		{"negative wattage", model.RawRow{Appliance: "X", Wattage: -10, HoursPerDay: 1, Quantity: 1}, analysis.ReasonNonPositiveWattage},
		{"NaN wattage", model.RawRow{Appliance: "X", Wattage: math.NaN(), HoursPerDay: 1, Quantity: 1}, analysis.ReasonNonPositiveWattage},
		{"infinite wattage", model.RawRow{Appliance: "X", Wattage: math.Inf(1), HoursPerDay: 1, Quantity: 1}, analysis.ReasonNonPositiveWattage},
		{"negative hours", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: -1, Quantity: 1}, analysis.ReasonHoursOutOfRange},
		{"hours above 24", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: 24.5, Quantity: 1}, analysis.ReasonHoursOutOfRange},
		{"NaN hours", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: math.NaN(), Quantity: 1}, analysis.ReasonHoursOutOfRange},
		{"fractional quantity", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: 1, Quantity: 1.5}, analysis.ReasonNonIntegerQuantity},
		{"NaN quantity", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: 1, Quantity: math.NaN()}, analysis.ReasonNonIntegerQuantity},
		{"positive infinite quantity", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: 1, Quantity: math.Inf(1)}, analysis.ReasonNonIntegerQuantity},
		{"negative infinite quantity", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: 1, Quantity: math.Inf(-1)}, analysis.ReasonNonIntegerQuantity},
		{"zero quantity", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: 1, Quantity: 0}, analysis.ReasonQuantityTooSmall},
		{"negative quantity", model.RawRow{Appliance: "X", Wattage: 100, HoursPerDay: 1, Quantity: -2}, analysis.ReasonQuantityTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, errs := analysis.Load([]model.RawRow{tt.row})
			assert.Empty(t, records)
			require.Len(t, errs, 1)
			assert.Equal(t, 0, errs[0].Index)
			assert.Equal(t, tt.reason, errs[0].Reason)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestLoad_BoundaryValuesAccepted(t *testing.T) {
	records, errs := analysis.Load([]model.RawRow{
		{Appliance: "Standby", Wattage: 0.5, HoursPerDay: 0, Quantity: 1},
		{Appliance: "Fridge", Wattage: 150, HoursPerDay: 24, Quantity: 1},
	})

	assert.Empty(t, errs)
	assert.Len(t, records, 2)
}

func TestLoad_MixedBatchKeepsGoodRows(t *testing.T) {
	records, errs := analysis.Load([]model.RawRow{
		{Appliance: "AC", Wattage: 1500, HoursPerDay: 8, Quantity: 1},
		{Appliance: "", Wattage: 100, HoursPerDay: 1, Quantity: 1},
		{Appliance: "Fan", Wattage: 75, HoursPerDay: 12, Quantity: 3},
	})

	require.Len(t, records, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Index, "error index refers to the input position")
	assert.Equal(t, "AC", records[0].Name)
	assert.Equal(t, "Fan", records[1].Name)
}

func TestLoad_AllRowsInvalidIsNotAnError(t *testing.T) {
	records, errs := analysis.Load([]model.RawRow{
		{Appliance: "", Wattage: 100, HoursPerDay: 1, Quantity: 1},
	})

	assert.Empty(t, records)
	assert.Len(t, errs, 1)
}

func TestRowError_Error(t *testing.T) {
	err := analysis.RowError{Index: 3, Reason: analysis.ReasonQuantityTooSmall, Message: "quantity must be >= 1, got 0"}
	assert.Equal(t, "row 3: QuantityTooSmall: quantity must be >= 1, got 0", err.Error())
}
