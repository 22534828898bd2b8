package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-advisor/internal/advisor"
	"energy-advisor/internal/analysis"
	"energy-advisor/internal/api/models"
	"energy-advisor/internal/config"
)

// RecommendationsHandler handles suggestion and savings requests
type RecommendationsHandler struct {
	engine *analysis.Engine
	cfg    *config.Config
}

// NewRecommendationsHandler creates a new recommendations handler
func NewRecommendationsHandler(cfg *config.Config) *RecommendationsHandler {
	return &RecommendationsHandler{
		engine: analysis.New(),
		cfg:    cfg,
	}
}

// Recommend handles POST /api/v1/recommendations
func (h *RecommendationsHandler) Recommend(c *gin.Context) {
	var req models.RecommendationsRequest
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

	savings, err := advisor.ProjectSavings(result, reduction)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REDUCTION",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.RecommendationsResponse{
		Recommendations: advisor.Recommendations(result),
		Savings:         savings,
	})
}

// ListTips handles GET /api/v1/tips
func (h *RecommendationsHandler) ListTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tips": advisor.GeneralTips()})
}
