package advisor

// Tip is one general energy-saving suggestion, independent of any
// particular analysis run.
type Tip struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GeneralTips returns the static catalog of saving tips shown alongside
// personalized recommendations.
func GeneralTips() []Tip {
	return []Tip{
		{
			Category:    "appliances",
			Title:       "Switch to LED bulbs",
			Description: "LED bulbs use around 75% less energy than incandescent bulbs and last far longer.",
		},
		{
			Category:    "appliances",
			Title:       "Unplug idle devices",
			Description: "Standby mode still draws power. Use power strips to switch off several devices at once.",
		},
		{
			Category:    "appliances",
			Title:       "Prefer 5-star rated appliances",
			Description: "High efficiency ratings pay back their premium over the appliance lifetime.",
		},
		{
			Category:    "cooling",
			Title:       "Set AC to 24-26°C",
			Description: "Every degree lower adds noticeably to consumption. Combine with ceiling fans for comfort.",
		},
		{
			Category:    "cooling",
			Title:       "Service AC filters monthly",
			Description: "Clogged filters force the compressor to work harder for the same cooling.",
		},
		{
			Category:    "cooling",
			Title:       "Seal doors and windows",
			Description: "Weather stripping keeps conditioned air inside and reduces AC load.",
		},
		{
			Category:    "water_heating",
			Title:       "Lower the water heater setpoint",
			Description: "Around 49°C is enough for household use; insulate hot water pipes to cut losses.",
		},
		{
			Category:    "water_heating",
			Title:       "Heat water on a timer",
			Description: "Run the geyser only when hot water is actually needed.",
		},
		{
			Category:    "kitchen",
			Title:       "Run full loads only",
			Description: "Dishwashers and washing machines use nearly the same energy regardless of load size.",
		},
		{
			Category:    "kitchen",
			Title:       "Match pan size to the burner",
			Description: "A small pot on a large burner wastes most of the heat around its sides.",
		},
		{
			Category:    "habits",
			Title:       "Use natural light during the day",
			Description: "Turn lights off when leaving a room and rely on daylight where possible.",
		},
		{
			Category:    "habits",
			Title:       "Review your bill monthly",
			Description: "Comparing bills month over month surfaces unusual spikes early.",
		},
	}
}
