package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/app/services"
	"github.com/messmate/messmate/internal/middleware"
)

// ContactController handles the contact form.
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController.
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit records a contact form submission.
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	contact, err := c.contactService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(contact, "Message received"))
}

// List returns all contact submissions, newest first.
func (c *ContactController) List(ctx *gin.Context) {
	contacts, err := c.contactService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts, ""))
}
