package analysis

import (
	"fmt"
	"math"
	"strings"

	"energy-advisor/internal/model"
)

// Load validates and normalizes raw appliance rows.
//
// Each row must supply a non-empty appliance name, a positive wattage, a
// daily usage between 0 and 24 hours inclusive, and an integer quantity of
// at least 1. A row failing any constraint is dropped and reported with its
// index and the first constraint it violated; the rest of the batch still
// loads. An empty valid set is a legal result, not an error.
func Load(rows []model.RawRow) ([]model.ApplianceRecord, []RowError) {
	records := make([]model.ApplianceRecord, 0, len(rows))
	var errs []RowError

	for i, row := range rows {
		rec, err := validateRow(i, row)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

func validateRow(index int, row model.RawRow) (model.ApplianceRecord, *RowError) {
	name := strings.TrimSpace(row.Appliance)
	if name == "" {
		return model.ApplianceRecord{}, &RowError{
			Index:   index,
			Reason:  ReasonMissingName,
			Message: "appliance name is required",
		}
	}

	// NaN (an unparseable upstream value) fails every comparison below,
	// so malformed numerics land on the matching constraint reason.
	if !(row.Wattage > 0) || math.IsInf(row.Wattage, 0) {
		return model.ApplianceRecord{}, &RowError{
			Index:   index,
			Reason:  ReasonNonPositiveWattage,
			Message: fmt.Sprintf("wattage must be > 0, got %v", row.Wattage),
		}
	}

	if !(row.HoursPerDay >= 0 && row.HoursPerDay <= 24) {
		return model.ApplianceRecord{}, &RowError{
			Index:   index,
			Reason:  ReasonHoursOutOfRange,
			Message: fmt.Sprintf("hours_per_day must be within 0..24, got %v", row.HoursPerDay),
		}
	}

	if row.Quantity != math.Trunc(row.Quantity) || math.IsNaN(row.Quantity) || math.IsInf(row.Quantity, 0) {
		return model.ApplianceRecord{}, &RowError{
			Index:   index,
			Reason:  ReasonNonIntegerQuantity,
			Message: fmt.Sprintf("quantity must be an integer, got %v", row.Quantity),
		}
	}

	if row.Quantity < 1 {
		return model.ApplianceRecord{}, &RowError{
			Index:   index,
			Reason:  ReasonQuantityTooSmall,
			Message: fmt.Sprintf("quantity must be >= 1, got %v", row.Quantity),
		}
	}

	return model.ApplianceRecord{
		Name:        name,
		Wattage:     row.Wattage,
		HoursPerDay: row.HoursPerDay,
		Quantity:    int(row.Quantity),
	}, nil
}
