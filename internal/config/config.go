package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/analysis"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the tariff from a separate YAML (e.g. examples/tariffs/*.yaml).
	// If both TariffFile and Tariff are provided, Tariff overrides TariffFile.
	TariffFile string        `yaml:"tariff_file"`
	Tariff     TariffConfig  `yaml:"tariff"`
	Advisor    AdvisorConfig `yaml:"advisor"`
}

type TariffConfig struct {
	Name       string  `yaml:"name"`
	RatePerKWh float64 `yaml:"rate_per_kwh"`
	Currency   string  `yaml:"currency"`
}

type AdvisorConfig struct {
	// ReductionPercent is the default savings-projection target.
	ReductionPercent float64 `yaml:"reduction_percent"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Tariff: TariffConfig{
			Name:       "default",
			RatePerKWh: analysis.DefaultRatePerKWh,
			Currency:   "₹",
		},
		Advisor: AdvisorConfig{
			ReductionPercent: advisor.DefaultReductionPercent,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If tariff_file is set, load it and merge in any explicit overrides from c.Tariff.
	if c.TariffFile != "" {
		tariffPath := c.TariffFile
		if !filepath.IsAbs(tariffPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), tariffPath)
			if _, err := os.Stat(cand); err == nil {
				tariffPath = cand
			}
		}
		loaded, err := LoadTariffFile(tariffPath)
		if err != nil {
			return nil, err
		}
		c.Tariff = MergeTariff(loaded, c.Tariff)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Tariff.RatePerKWh == 0 {
		c.Tariff.RatePerKWh = analysis.DefaultRatePerKWh
	}
	if c.Tariff.Currency == "" {
		c.Tariff.Currency = "₹"
	}
	if c.Advisor.ReductionPercent == 0 {
		c.Advisor.ReductionPercent = advisor.DefaultReductionPercent
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Tariff.RatePerKWh <= 0 {
		return fmt.Errorf("tariff.rate_per_kwh must be > 0, got %v", c.Tariff.RatePerKWh)
	}
	if c.Advisor.ReductionPercent < advisor.MinReductionPercent ||
		c.Advisor.ReductionPercent > advisor.MaxReductionPercent {
		return fmt.Errorf("advisor.reduction_percent must be within %.0f..%.0f, got %v",
			advisor.MinReductionPercent, advisor.MaxReductionPercent, c.Advisor.ReductionPercent)
	}
	return nil
}

type tariffFileWrapper struct {
	Tariff TariffConfig `yaml:"tariff"`
}

// LoadTariffFile reads a standalone tariff preset YAML.
func LoadTariffFile(path string) (TariffConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TariffConfig{}, err
	}
	var w tariffFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TariffConfig{}, err
	}
	return w.Tariff, nil
}

// MergeTariff overlays non-zero fields from override onto base.
// This is used when loading a tariff file and then applying overrides from the request.
func MergeTariff(base, override TariffConfig) TariffConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.RatePerKWh != 0 {
		out.RatePerKWh = override.RatePerKWh
	}
	if override.Currency != "" {
		out.Currency = override.Currency
	}
	return out
}
