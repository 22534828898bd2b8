package main

import (
	"flag"
	"fmt"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/analysis"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/model"
)

// Demo:
// - Load the built-in sample household (or a JSON file)
// - Run the consumption analysis at a configurable tariff
// - Print metrics, recommendations and a savings projection
func main() {
	dataPath := flag.String("data", "", "Optional path to appliance JSON (default: built-in sample)")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	rate := flag.Float64("rate", 0, "Tariff override in currency per kWh (0 = config default)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}
	if *rate == 0 {
		*rate = cfg.Tariff.RatePerKWh
	}

	rows := data.SampleAppliances()
	if *dataPath != "" {
		loaded, err := data.LoadAppliancesJSON(*dataPath)
		if err != nil {
			panic(err)
		}
		rows = loaded
	}
	if len(rows) == 0 {
		panic("no appliances to analyze")
	}

	engine := analysis.New()
	result, rowErrs, err := engine.RunRows(rows, *rate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Analyzed %d appliances at %s%.2f/kWh\n\n", result.ApplianceCount, cfg.Tariff.Currency, result.RatePerKWh)

	for i := 0; i < min(12, len(result.PerAppliance)); i++ {
		m := result.PerAppliance[i]
		hog := ""
		if m.EnergyHog {
			hog = "  HOG"
		}
		fmt.Printf(
			"%-22s %6.0fW x %d  %5.1fh/day  monthly=%8.2f kWh  cost=%9.2f  share=%5.1f%%  %-6s%s\n",
			m.Record.Name,
			m.Record.Wattage,
			m.Record.Quantity,
			m.Record.HoursPerDay,
			m.MonthlyKWh,
			m.MonthlyCost,
			m.ShareOfTotal*100,
			string(m.Category),
			hog,
		)
	}

	fmt.Printf("\nTotal: %.2f kWh/day  %.2f kWh/month  %s%.2f/month\n",
		result.TotalDailyKWh, result.TotalMonthlyKWh, cfg.Tariff.Currency, result.TotalMonthlyCost)
	fmt.Printf("Efficiency score: %.1f (%s)\n", result.EfficiencyScore, result.Balance)

	if len(rowErrs) > 0 {
		fmt.Printf("\nSkipped %d rows:\n", len(rowErrs))
		for _, re := range rowErrs {
			fmt.Printf("  %s\n", re.Error())
		}
	}

	if recs := advisor.Recommendations(result); len(recs) > 0 {
		fmt.Println("\nRecommendations:")
		for i, rec := range recs {
			fmt.Printf("  %d. %s: %s\n", i+1, rec.Appliance, rec.Action)
		}
	}

	savings, err := advisor.ProjectSavings(result, cfg.Advisor.ReductionPercent)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nAt %.0f%% reduction: save %s%.2f/month (%s%.2f/year), %.1f kg CO2/month\n",
		savings.ReductionPercent,
		cfg.Tariff.Currency, savings.MonthlyCostSavings,
		cfg.Tariff.Currency, savings.AnnualCostSavings,
		savings.CO2ReductionKg,
	)

	fmt.Printf("\nDone. Top consumer: %s\n", topName(result))
}

func topName(result *model.AnalysisResult) string {
	if len(result.TopConsumers) == 0 {
		return "n/a"
	}
	return result.TopConsumers[0].Record.Name
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
