package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/app/services"
	"github.com/messmate/messmate/internal/middleware"
	"github.com/messmate/messmate/internal/pkg/helpers"
)

// MenuController handles daily menu management.
type MenuController struct {
	menuService services.MenuService
}

// NewMenuController creates a new MenuController.
func NewMenuController(menuService services.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

// Upsert creates or replaces the menu for a date.
func (c *MenuController) Upsert(ctx *gin.Context) {
	var req dto.UpsertMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid menu data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	menu, err := c.menuService.Upsert(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(newMenuResponse(menu), "Menu saved"))
}

// GetByDate returns the menu for one date.
func (c *MenuController) GetByDate(ctx *gin.Context) {
	menu, err := c.menuService.GetByDate(ctx, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(newMenuResponse(menu), ""))
}

func newMenuResponse(menu *models.Menu) *dto.MenuResponse {
	return &dto.MenuResponse{
		ID:        menu.ID,
		Date:      helpers.FormatDate(menu.Date),
		Breakfast: menu.Breakfast,
		Lunch:     menu.Lunch,
		Dinner:    menu.Dinner,
	}
}
