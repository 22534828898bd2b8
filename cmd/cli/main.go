package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/analysis"
	"energy-advisor/internal/bill"
	"energy-advisor/internal/charts"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "bill":
		cmdBill(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --appliances appliances.csv [--bill bill.pdf] [--config config.yaml] [--out results/metrics.csv] [--charts results/]")
	fmt.Println("  cli bill --file bill.pdf [--text]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze computes per-appliance kWh/cost, categories and saving suggestions")
	fmt.Println("  - bill extracts consumer/billing fields from an electricity-bill PDF")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	appliancesPath := fs.String("appliances", "appliances.csv", "Path to appliance CSV or JSON")
	billPath := fs.String("bill", "", "Optional: electricity-bill PDF for comparison")
	cfgPath := fs.String("config", "", "Optional: YAML config")
	rate := fs.Float64("rate", 0, "Tariff override in currency per kWh (0 = config default)")
	reduction := fs.Float64("reduction", 0, "Savings target percent (0 = config default)")
	outPath := fs.String("out", "", "Optional: write per-appliance metrics CSV")
	chartDir := fs.String("charts", "", "Optional: directory for chart PNGs")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if *rate == 0 {
		*rate = cfg.Tariff.RatePerKWh
	}
	if *reduction == 0 {
		*reduction = cfg.Advisor.ReductionPercent
	}

	rows, err := readAppliances(*appliancesPath)
	if err != nil {
		fatal(err)
	}

	engine := analysis.New()
	result, rowErrs, err := engine.RunRows(rows, *rate)
	if err != nil {
		fatal(err)
	}

	var billData *model.BillData
	if *billPath != "" {
		billData, _, err = bill.ExtractFile(*billPath)
		if err != nil {
			fatal(fmt.Errorf("extract bill: %w", err))
		}
		result.Bill = analysis.CompareWithBill(result.TotalMonthlyKWh, billData.MeteredUnits)
	}

	printReport(cfg, result, rowErrs, billData)

	recs := advisor.Recommendations(result)
	printRecommendations(recs)

	if savings, err := advisor.ProjectSavings(result, *reduction); err == nil {
		printSavings(cfg, savings)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := analysis.WriteMetricsCSV(*outPath, result.PerAppliance); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(result.PerAppliance), *outPath)
	}

	if *chartDir != "" {
		if err := writeCharts(*chartDir, result, *reduction); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote charts to %s\n", *chartDir)
	}
}

func cmdBill(args []string) {
	fs := flag.NewFlagSet("bill", flag.ExitOnError)
	filePath := fs.String("file", "", "Path to electricity-bill PDF")
	showText := fs.Bool("text", false, "Also print the raw extracted text")
	_ = fs.Parse(args)

	if *filePath == "" {
		fmt.Println("--file is required")
		os.Exit(2)
	}

	billData, text, err := bill.ExtractFile(*filePath)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Consumer No:      %s\n", billData.ConsumerNo)
	fmt.Printf("Consumer Name:    %s\n", billData.ConsumerName)
	fmt.Printf("Bill Month:       %s\n", billData.BillMonth)
	fmt.Printf("Billing Date:     %s\n", billData.BillingDate)
	fmt.Printf("Due Date:         %s\n", billData.DueDate)
	fmt.Printf("Metered Units:    %.2f kWh\n", billData.MeteredUnits)
	fmt.Printf("Total Amount:     %s\n", humanize.CommafWithDigits(billData.TotalAmount, 2))
	fmt.Printf("Previous Reading: %d\n", billData.PreviousReading)
	fmt.Printf("Current Reading:  %d\n", billData.CurrentReading)

	if *showText {
		fmt.Println("\n--- extracted text ---")
		fmt.Println(text)
	}
}

func readAppliances(path string) ([]model.RawRow, error) {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return data.LoadAppliancesJSON(path)
	}
	return analysis.ReadApplianceCSV(path)
}

func printReport(cfg *config.Config, result *model.AnalysisResult, rowErrs []analysis.RowError, billData *model.BillData) {
	cur := cfg.Tariff.Currency

	fmt.Printf("Analyzed %d appliances at %s%.2f/kWh\n\n", result.ApplianceCount, cur, result.RatePerKWh)

	fmt.Printf("%-22s %-9s %-7s %-4s %-12s %-12s %-8s %-8s %-4s\n",
		"appliance", "wattage", "hrs/day", "qty", "monthly_kwh", "monthly_cost", "share", "category", "hog")
	for _, m := range result.PerAppliance {
		hog := ""
		if m.EnergyHog {
			hog = "HOG"
		}
		fmt.Printf("%-22s %-9.0f %-7.1f %-4d %-12.2f %-12.2f %-8.1f %-8s %-4s\n",
			m.Record.Name,
			m.Record.Wattage,
			m.Record.HoursPerDay,
			m.Record.Quantity,
			m.MonthlyKWh,
			m.MonthlyCost,
			m.ShareOfTotal*100,
			string(m.Category),
			hog,
		)
	}

	fmt.Printf("\nTotal: %s kWh/month  %s%s/month  efficiency=%.1f (%s)\n",
		humanize.CommafWithDigits(result.TotalMonthlyKWh, 2),
		cur,
		humanize.CommafWithDigits(result.TotalMonthlyCost, 2),
		result.EfficiencyScore,
		result.Balance,
	)

	if result.Bill != nil {
		fmt.Printf("Bill comparison: billed %.2f kWh vs calculated %.2f kWh (%.1f%% off, accuracy: %s)\n",
			result.Bill.BillUnits,
			result.Bill.CalculatedKWh,
			result.Bill.DifferencePercent,
			result.Bill.Accuracy,
		)
	} else if billData != nil {
		fmt.Println("Bill comparison: no metered units found on the bill")
	}

	if len(rowErrs) > 0 {
		fmt.Printf("\nSkipped %d rows:\n", len(rowErrs))
		for _, re := range rowErrs {
			fmt.Printf("  %s\n", re.Error())
		}
	}
}

func printRecommendations(recs []advisor.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("\nConsumption looks well balanced; no appliance-specific suggestions.")
		return
	}

	fmt.Printf("\nRecommendations:\n")
	for i, rec := range recs {
		fmt.Printf("  %d. %s: %s\n     %s\n", i+1, rec.Appliance, rec.Issue, rec.Action)
	}
}

func printSavings(cfg *config.Config, s *advisor.SavingsProjection) {
	cur := cfg.Tariff.Currency
	fmt.Printf("\nAt %.0f%% reduction: %s%s/month (%s%s/year), %.1f kg CO2/month avoided\n",
		s.ReductionPercent,
		cur, humanize.CommafWithDigits(s.MonthlyCostSavings, 2),
		cur, humanize.CommafWithDigits(s.AnnualCostSavings, 2),
		s.CO2ReductionKg,
	)
}

func writeCharts(dir string, result *model.AnalysisResult, reduction float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	gen := charts.NewGenerator()

	pie, err := gen.ConsumptionSharePie(result)
	if err != nil {
		return err
	}
	if err := writePNG(filepath.Join(dir, "share.png"), pie); err != nil {
		return err
	}

	bar, err := gen.MonthlyConsumptionBar(result)
	if err != nil {
		return err
	}
	if err := writePNG(filepath.Join(dir, "monthly.png"), bar); err != nil {
		return err
	}

	if savings, err := advisor.ProjectSavings(result, reduction); err == nil {
		if sb, err := gen.SavingsProjectionBar(savings); err == nil {
			if err := writePNG(filepath.Join(dir, "savings.png"), sb); err != nil {
				return err
			}
		}
	}

	return nil
}

func writePNG(path, b64 string) error {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
