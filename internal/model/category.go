package model

// Category is a consumption tier for a single appliance.
// Keep these values stable; they are intended for CSV and JSON output.
type Category string

const (
	CategoryHigh   Category = "High"
	CategoryMedium Category = "Medium"
	CategoryLow    Category = "Low"
)

// Classification thresholds, expressed as fractions of total monthly
// consumption. Categorization and hog detection both key off the same
// share-of-total so the two stay consistent.
const (
	// HighShareThreshold marks the High tier: share > 0.20.
	HighShareThreshold = 0.20
	// MediumShareThreshold marks the Medium tier: 0.05 < share <= 0.20.
	MediumShareThreshold = 0.05
	// HogShareThreshold flags an energy hog: share strictly above 0.10.
	HogShareThreshold = 0.10
)

func CategoryFromShare(share float64) Category {
	switch {
	case share > HighShareThreshold:
		return CategoryHigh
	case share > MediumShareThreshold:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// IsEnergyHog reports whether an appliance with the given share of total
// monthly consumption counts as an energy hog. The threshold is strict:
// an appliance at exactly 10% is not a hog.
func IsEnergyHog(share float64) bool {
	return share > HogShareThreshold
}
