package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/app/services"
	"github.com/messmate/messmate/internal/middleware"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/helpers"
)

// BookingController handles meal bookings.
type BookingController struct {
	bookingService services.BookingService
}

// NewBookingController creates a new BookingController.
func NewBookingController(bookingService services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// Upsert creates or replaces a student's booking for a date. Students may
// only book for themselves; admins may book on any student's behalf.
func (c *BookingController) Upsert(ctx *gin.Context) {
	var req dto.UpsertBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid booking data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if middleware.CallerRole(ctx) != string(models.RoleAdmin) && req.StudentID != middleware.CallerStudentID(ctx) {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	booking, err := c.bookingService.Upsert(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(newBookingResponse(booking), "Booking saved"))
}

// ListByDate returns all bookings for one date with student details.
func (c *BookingController) ListByDate(ctx *gin.Context) {
	bookings, err := c.bookingService.ListByDate(ctx, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(newBookingResponses(bookings), ""))
}

// ListByStudent returns one student's booking history, newest first.
func (c *BookingController) ListByStudent(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	bookings, err := c.bookingService.ListByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(newBookingResponses(bookings), ""))
}

func newBookingResponse(booking *models.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:        booking.ID,
		StudentID: booking.StudentID,
		Date:      helpers.FormatDate(booking.Date),
		Meals:     booking.Meals,
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}
	if booking.Student != nil {
		resp.Student = &dto.StudentResponse{
			ID:        booking.Student.ID,
			Name:      booking.Student.Name,
			Email:     booking.Student.Email,
			CreatedAt: booking.Student.CreatedAt,
		}
	}
	return resp
}

func newBookingResponses(bookings []*models.Booking) []*dto.BookingResponse {
	responses := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, newBookingResponse(b))
	}
	return responses
}
