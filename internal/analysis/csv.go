package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"energy-advisor/internal/model"
)

// Required appliance CSV columns. Order in the file does not matter.
var applianceColumns = []string{"appliance", "wattage", "hours_per_day", "quantity"}

// ReadAppliances parses appliance rows from CSV data with a header row.
// Unparseable numeric cells are coerced to NaN so Load can reject the row
// with the matching constraint reason; this keeps one bad cell from
// aborting the whole file.
func ReadAppliances(r io.Reader) ([]model.RawRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range applianceColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var rows []model.RawRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, model.RawRow{
			Appliance:   field(record, idx["appliance"]),
			Wattage:     parseNumber(field(record, idx["wattage"])),
			HoursPerDay: parseNumber(field(record, idx["hours_per_day"])),
			Quantity:    parseNumber(field(record, idx["quantity"])),
		})
	}

	return rows, nil
}

// ReadApplianceCSV reads appliance rows from a CSV file on disk.
func ReadApplianceCSV(path string) ([]model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAppliances(f)
}

// WriteMetricsCSV writes per-appliance metrics as CSV, one row per
// appliance in result order.
func WriteMetricsCSV(path string, metrics []model.ApplianceMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"appliance",
		"wattage",
		"hours_per_day",
		"quantity",
		"daily_kwh",
		"monthly_kwh",
		"monthly_cost",
		"share_of_total",
		"category",
		"energy_hog",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, m := range metrics {
		row := []string{
			m.Record.Name,
			fmtFloat(m.Record.Wattage),
			fmtFloat(m.Record.HoursPerDay),
			strconv.Itoa(m.Record.Quantity),
			fmtFloat(m.DailyKWh),
			fmtFloat(m.MonthlyKWh),
			fmtFloat(m.MonthlyCost),
			fmtFloat(m.ShareOfTotal),
			string(m.Category),
			strconv.FormatBool(m.EnergyHog),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
