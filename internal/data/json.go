package data

import (
	"encoding/json"
	"os"

	"energy-advisor/internal/model"
)

// applianceFile is the JSON shape for appliance tables on disk.
//
// Example:
//
//	{
//	  "appliances": [
//	    {"appliance": "AC", "wattage": 1500, "hours_per_day": 8, "quantity": 2}
//	  ]
//	}
type applianceFile struct {
	Appliances []model.RawRow `json:"appliances"`
}

// LoadAppliancesJSON reads an appliance table from a JSON file.
func LoadAppliancesJSON(path string) ([]model.RawRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f applianceFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f.Appliances, nil
}

// SampleAppliances returns a small built-in appliance table used by the
// demo and as a download template.
func SampleAppliances() []model.RawRow {
	return []model.RawRow{
		{Appliance: "Air Conditioner", Wattage: 1500, HoursPerDay: 8, Quantity: 1},
		{Appliance: "Refrigerator", Wattage: 150, HoursPerDay: 24, Quantity: 1},
		{Appliance: "Television", Wattage: 100, HoursPerDay: 5, Quantity: 2},
		{Appliance: "Washing Machine", Wattage: 500, HoursPerDay: 1, Quantity: 1},
		{Appliance: "Water Heater", Wattage: 2000, HoursPerDay: 1, Quantity: 1},
		{Appliance: "Ceiling Fan", Wattage: 75, HoursPerDay: 12, Quantity: 3},
		{Appliance: "LED Lights", Wattage: 10, HoursPerDay: 6, Quantity: 8},
	}
}
