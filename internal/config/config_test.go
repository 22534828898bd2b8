package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-advisor/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 6.5, cfg.Tariff.RatePerKWh)
	assert.Equal(t, "₹", cfg.Tariff.Currency)
	assert.Equal(t, 20.0, cfg.Advisor.ReductionPercent)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
tariff:
  name: custom
  rate_per_kwh: 7.25
  currency: "$"
advisor:
  reduction_percent: 30
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Tariff.Name)
	assert.Equal(t, 7.25, cfg.Tariff.RatePerKWh)
	assert.Equal(t, "$", cfg.Tariff.Currency)
	assert.Equal(t, 30.0, cfg.Advisor.ReductionPercent)
}

func TestLoad_AppliesDefaultsForOmittedFields(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
tariff:
  name: sparse
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6.5, cfg.Tariff.RatePerKWh)
	assert.Equal(t, "₹", cfg.Tariff.Currency)
	assert.Equal(t, 20.0, cfg.Advisor.ReductionPercent)
}

func TestLoad_TariffFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "domestic.yaml", `
tariff:
  name: domestic
  rate_per_kwh: 6.5
  currency: "₹"
`)
	// The tariff file path is relative to the config file's directory, and
	// explicit tariff fields override the preset.
	path := writeFile(t, dir, "config.yaml", `
tariff_file: domestic.yaml
tariff:
  rate_per_kwh: 9.1
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "domestic", cfg.Tariff.Name)
	assert.Equal(t, 9.1, cfg.Tariff.RatePerKWh)
	assert.Equal(t, "₹", cfg.Tariff.Currency)
}

func TestLoad_MissingTariffFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "tariff_file: nope.yaml\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative rate", "tariff:\n  rate_per_kwh: -3\n"},
		{"reduction out of range", "advisor:\n  reduction_percent: 80\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", tt.yaml)
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMergeTariff(t *testing.T) {
	base := config.TariffConfig{Name: "domestic", RatePerKWh: 6.5, Currency: "₹"}

	merged := config.MergeTariff(base, config.TariffConfig{RatePerKWh: 8})
	assert.Equal(t, "domestic", merged.Name)
	assert.Equal(t, 8.0, merged.RatePerKWh)
	assert.Equal(t, "₹", merged.Currency)

	assert.Equal(t, base, config.MergeTariff(base, config.TariffConfig{}), "empty override changes nothing")
}

func TestLoadTariffFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "us.yaml", `
tariff:
  name: us-average
  rate_per_kwh: 0.17
  currency: "$"
`)

	tariff, err := config.LoadTariffFile(path)
	require.NoError(t, err)
	assert.Equal(t, "us-average", tariff.Name)
	assert.Equal(t, 0.17, tariff.RatePerKWh)
}
