package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/analysis"
	"energy-advisor/internal/api/models"
	"energy-advisor/internal/charts"
	"energy-advisor/internal/config"
)

// ChartsHandler renders analysis charts
type ChartsHandler struct {
	engine    *analysis.Engine
	generator *charts.Generator
	cfg       *config.Config
}

// NewChartsHandler creates a new charts handler
func NewChartsHandler(cfg *config.Config) *ChartsHandler {
	return &ChartsHandler{
		engine:    analysis.New(),
		generator: charts.NewGenerator(),
		cfg:       cfg,
	}
}

// Render handles POST /api/v1/charts
func (h *ChartsHandler) Render(c *gin.Context) {
	var req models.ChartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	rate := req.RatePerKWh
	if rate == 0 {
		rate = h.cfg.Tariff.RatePerKWh
	}
	reduction := req.ReductionPercent
	if reduction == 0 {
		reduction = h.cfg.Advisor.ReductionPercent
	}

	result, _, err := h.engine.RunRows(req.Appliances, rate)
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

	if len(result.PerAppliance) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_DATA",
				Message: "no valid appliance rows to chart",
			},
		})
		return
	}

	pie, err := h.generator.ConsumptionSharePie(result)
	if err != nil {
		chartError(c, err)
		return
	}
	bar, err := h.generator.MonthlyConsumptionBar(result)
	if err != nil {
		chartError(c, err)
		return
	}

	resp := models.ChartsResponse{
		SharePie:   pie,
		MonthlyBar: bar,
	}

	// Savings chart is best effort; skip it when the projection is invalid.
	if savings, err := advisor.ProjectSavings(result, reduction); err == nil {
		if sb, err := h.generator.SavingsProjectionBar(savings); err == nil {
			resp.SavingsBar = sb
		}
	}

	c.JSON(http.StatusOK, resp)
}

func chartError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "CHART_ERROR",
			Message: err.Error(),
		},
	})
}
