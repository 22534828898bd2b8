package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"energy-advisor/internal/analysis"
	"energy-advisor/internal/api/models"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/logging"
	"energy-advisor/internal/model"
)

// AnalysisHandler handles analysis-related requests
type AnalysisHandler struct {
	engine *analysis.Engine
	cache  *data.ResultCache
	cfg    *config.Config
	log    *logging.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(cfg *config.Config, cache *data.ResultCache, log *logging.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		engine: analysis.New(),
		cache:  cache,
		cfg:    cfg,
		log:    log.WithComponent("analysis_handler"),
	}
}

// RunAnalysis handles POST /api/v1/analysis
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	h.analyze(c, req.Appliances, req.RatePerKWh, req.BillUnits, req.Options.IncludeMetrics)
}

// UploadAnalysis handles POST /api/v1/analysis/upload (multipart CSV)
func (h *AnalysisHandler) UploadAnalysis(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_FILE",
				Message: "multipart field 'file' with an appliance CSV is required",
			},
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_FILE",
				Message: err.Error(),
			},
		})
		return
	}
	defer f.Close()

	rows, err := analysis.ReadAppliances(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CSV",
				Message: err.Error(),
			},
		})
		return
	}

	rate := formFloat(c, "rate_per_kwh")
	billUnits := formFloat(c, "bill_units")
	includeMetrics := c.PostForm("include_metrics") == "true"

	h.analyze(c, rows, rate, billUnits, includeMetrics)
}

// GetMetrics handles GET /api/v1/analysis/:id/metrics
func (h *AnalysisHandler) GetMetrics(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no analysis run with that id (runs expire after a while)",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         id,
		"appliances": metricsRows(result),
	})
}

func (h *AnalysisHandler) analyze(c *gin.Context, rows []model.RawRow, rate, billUnits float64, includeMetrics bool) {
	if rate == 0 {
		rate = h.cfg.Tariff.RatePerKWh
	}

	records, rowErrs := analysis.Load(rows)
	result, err := h.engine.Run(records, rate)
	if err != nil {
		var cfgErr *analysis.ConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_RATE",
					Message: cfgErr.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ANALYSIS_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	if billUnits > 0 {
		result.Bill = analysis.CompareWithBill(result.TotalMonthlyKWh, billUnits)
	}

	id := h.cache.Put(result)
	h.log.LogAnalysisRun(result.ApplianceCount, len(rowErrs), result.TotalMonthlyKWh)
	for _, re := range rowErrs {
		h.log.LogSkippedRow(re.Index, string(re.Reason), re.Message)
	}

	resp := models.AnalysisResponse{
		ID:          id,
		Status:      "completed",
		Summary:     buildSummary(result),
		SkippedRows: skippedRows(rowErrs),
	}
	if includeMetrics {
		resp.Appliances = metricsRows(result)
	}

	c.JSON(http.StatusOK, resp)
}

func buildSummary(result *model.AnalysisResult) models.Summary {
	top := make([]models.TopConsumer, 0, len(result.TopConsumers))
	for _, m := range result.TopConsumers {
		top = append(top, models.TopConsumer{
			Appliance:   m.Record.Name,
			MonthlyKWh:  m.MonthlyKWh,
			MonthlyCost: m.MonthlyCost,
		})
	}

	return models.Summary{
		TotalDailyKWh:    result.TotalDailyKWh,
		TotalMonthlyKWh:  result.TotalMonthlyKWh,
		TotalMonthlyCost: result.TotalMonthlyCost,
		AvgDailyKWh:      result.AvgDailyKWh,
		ApplianceCount:   result.ApplianceCount,
		TotalWattage:     result.TotalWattage,
		EfficiencyScore:  result.EfficiencyScore,
		Balance:          result.Balance,
		RatePerKWh:       result.RatePerKWh,
		TopConsumers:     top,
		Bill:             result.Bill,
	}
}

func metricsRows(result *model.AnalysisResult) []models.MetricsRow {
	rows := make([]models.MetricsRow, 0, len(result.PerAppliance))
	for _, m := range result.PerAppliance {
		rows = append(rows, models.MetricsRow{
			Appliance:    m.Record.Name,
			Wattage:      m.Record.Wattage,
			HoursPerDay:  m.Record.HoursPerDay,
			Quantity:     m.Record.Quantity,
			DailyKWh:     m.DailyKWh,
			MonthlyKWh:   m.MonthlyKWh,
			MonthlyCost:  m.MonthlyCost,
			ShareOfTotal: m.ShareOfTotal,
			Category:     string(m.Category),
			EnergyHog:    m.EnergyHog,
		})
	}
	return rows
}

func skippedRows(rowErrs []analysis.RowError) []models.SkippedRow {
	if len(rowErrs) == 0 {
		return nil
	}
	out := make([]models.SkippedRow, 0, len(rowErrs))
	for _, re := range rowErrs {
		out = append(out, models.SkippedRow{
			Index:   re.Index,
			Reason:  string(re.Reason),
			Message: re.Message,
		})
	}
	return out
}

func formFloat(c *gin.Context, field string) float64 {
	raw := c.PostForm(field)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
