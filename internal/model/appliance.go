package model

// RawRow is one unvalidated appliance row as it arrives from a CSV upload
// or a JSON request body. Numeric fields that could not be parsed upstream
// are coerced to NaN so the loader can reject them with a reason.
type RawRow struct {
	Appliance   string  `json:"appliance"`
	Wattage     float64 `json:"wattage"`
	HoursPerDay float64 `json:"hours_per_day"`
	Quantity    float64 `json:"quantity"`
}

// ApplianceRecord is a validated appliance row.
// Units:
// - Wattage: watts, > 0
// - HoursPerDay: hours, 0..24 inclusive
// - Quantity: unit count, >= 1
//
// Records are immutable after validation and owned by the analysis run
// that loaded them.
type ApplianceRecord struct {
	Name        string
	Wattage     float64
	HoursPerDay float64
	Quantity    int
}

// ConnectedWattage returns the total plate wattage across all units.
func (r ApplianceRecord) ConnectedWattage() float64 {
	return r.Wattage * float64(r.Quantity)
}
