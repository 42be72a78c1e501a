package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/app/services"
	"github.com/messmate/messmate/internal/middleware"
)

// StatsController serves the admin dashboard aggregates.
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController.
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// Overview returns the dashboard summary counts.
func (c *StatsController) Overview(ctx *gin.Context) {
	overview, err := c.statsService.Overview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview, ""))
}

// MealDistribution returns per-meal booking counts for one date.
func (c *StatsController) MealDistribution(ctx *gin.Context) {
	dist, err := c.statsService.MealDistribution(ctx, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dist, ""))
}

// RatingDistribution returns feedback rating buckets 1 through 5.
func (c *StatsController) RatingDistribution(ctx *gin.Context) {
	dist, err := c.statsService.RatingDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dist, ""))
}

// ComplaintDistribution returns complaint counts by status.
func (c *StatsController) ComplaintDistribution(ctx *gin.Context) {
	dist, err := c.statsService.ComplaintDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dist, ""))
}

// BookingSeries returns day-over-day booking totals. The window length
// comes from the days query parameter and defaults server-side.
func (c *StatsController) BookingSeries(ctx *gin.Context) {
	days := 0
	if daysStr := ctx.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid days value")
			errorDetail = errorDetail.WithDetails("days must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		days = parsed
	}

	series, err := c.statsService.BookingSeries(ctx, days)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(series, ""))
}
