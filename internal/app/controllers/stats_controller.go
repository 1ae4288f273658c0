package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/app/services"
	"github.com/anvaya-club/backend/internal/middleware"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

const (
	statsMinYear = 2000
	statsMaxYear = 2100
)

// StatsController handles the statistics endpoint
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// ActivityStatistics godoc
// @Summary Per-wing activity counts
// @Description Counts activities per wing, optionally filtered to one calendar year
// @Tags statistics
// @Produce json
// @Param year query int false "Calendar year filter (2000-2100)"
// @Success 200 {object} dto.ActivityStatisticsResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /statistics/activities [get]
func (sc *StatsController) ActivityStatistics(c *gin.Context) {
	var year *int
	if raw := c.Query("year"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewValidationField("year must be an integer", "year"))
			return
		}
		if value < statsMinYear || value > statsMaxYear {
			middleware.HandleAPIError(c, apperrors.NewValidationField("year must be between 2000 and 2100", "year"))
			return
		}
		year = &value
	}

	stats, err := sc.statsService.GetActivityStatistics(c.Request.Context(), year)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
