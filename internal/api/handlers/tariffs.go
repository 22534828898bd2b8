package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/config"
	"energy-advisor/internal/logging"
)

// TariffHandler handles tariff-preset requests
type TariffHandler struct {
	tariffDir string
	log       *logging.Logger
}

// NewTariffHandler creates a new tariff handler. The preset directory is
// TARIFF_DIR or ./examples/tariffs.
func NewTariffHandler(log *logging.Logger) *TariffHandler {
	dir := os.Getenv("TARIFF_DIR")
	if dir == "" {
		dir = filepath.Join("examples", "tariffs")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	return &TariffHandler{
		tariffDir: dir,
		log:       log.WithComponent("tariff_handler"),
	}
}

// ListTariffs handles GET /api/v1/tariffs
func (h *TariffHandler) ListTariffs(c *gin.Context) {
	tariffs := []models.TariffInfo{}

	entries, err := os.ReadDir(h.tariffDir)
	if err != nil {
		// Missing preset directory is not an error; presets are optional.
		h.log.Debug("Tariff directory unavailable", "dir", h.tariffDir, "error", err)
		c.JSON(http.StatusOK, gin.H{"tariffs": tariffs})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.tariffDir, entry.Name())
		tariff, err := config.LoadTariffFile(path)
		if err != nil {
			h.log.Warn("Skipping invalid tariff file", "path", path, "error", err)
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := tariff.Name
		if name == "" {
			name = id
		}

		tariffs = append(tariffs, models.TariffInfo{
			ID:         id,
			Name:       name,
			File:       path,
			RatePerKWh: tariff.RatePerKWh,
			Currency:   tariff.Currency,
		})
	}

	c.JSON(http.StatusOK, gin.H{"tariffs": tariffs})
}
