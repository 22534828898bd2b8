package advisor

import (
	"fmt"
	"sort"
	"strings"

	"energy-advisor/internal/model"
)

// RecommendationShareThreshold selects which appliances get a tailored
// recommendation. Note this is a higher bar than the energy-hog flag.
const RecommendationShareThreshold = 0.15

// Recommendation is one canned, per-appliance saving suggestion.
type Recommendation struct {
	Appliance string `json:"appliance"`
	Issue     string `json:"issue"`
	Action    string `json:"recommendation"`
}

// Recommendations generates template-based suggestions for the appliances
// that dominate the consumption distribution, heaviest consumers first.
// A well-balanced distribution yields an empty list.
func Recommendations(result *model.AnalysisResult) []Recommendation {
	if result == nil {
		return nil
	}

	heavy := make([]model.ApplianceMetrics, 0, len(result.PerAppliance))
	for _, m := range result.PerAppliance {
		if m.ShareOfTotal > RecommendationShareThreshold {
			heavy = append(heavy, m)
		}
	}
	sort.SliceStable(heavy, func(i, j int) bool {
		return heavy[i].ShareOfTotal > heavy[j].ShareOfTotal
	})

	recs := make([]Recommendation, 0, len(heavy))
	for _, m := range heavy {
		recs = append(recs, Recommendation{
			Appliance: m.Record.Name,
			Issue:     fmt.Sprintf("Consuming %.1f%% of total energy", m.ShareOfTotal*100),
			Action:    actionFor(m.Record.Name),
		})
	}

	return recs
}

func actionFor(name string) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "AC") || strings.Contains(upper, "AIR CONDITIONER"):
		return "Set temperature to 24-26°C, use timer mode, clean filters monthly"
	case strings.Contains(upper, "REFRIGERATOR") || strings.Contains(upper, "FRIDGE"):
		return "Ensure door seals are tight, set optimal temperature (3-4°C), defrost regularly"
	case strings.Contains(upper, "HEATER") || strings.Contains(upper, "GEYSER"):
		return "Use timer, reduce temperature setting, insulate pipes, consider solar heating"
	default:
		return "Reduce usage hours, use energy-efficient alternatives, unplug when not in use"
	}
}
