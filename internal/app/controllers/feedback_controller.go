package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/app/services"
	"github.com/messmate/messmate/internal/middleware"
)

// FeedbackController handles dining feedback.
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController.
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// Submit records a feedback entry.
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid feedback data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	feedback, err := c.feedbackService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(feedback, "Feedback received"))
}

// List returns all feedback entries, newest first.
func (c *FeedbackController) List(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(feedbacks, ""))
}
