package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bistro/internal/auth"
	"bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/service"
)

// MenuHandler handles menu catalog endpoints.
type MenuHandler struct {
	svc service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// CreateMenuItemRequest represents a new dish.
type CreateMenuItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Recipe   string          `json:"recipe"`
	Image    string          `json:"image"`
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
}

// ListMenu godoc
// @Summary List menu items
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Failure 503 {object} errors.ErrorResponse
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.svc.ListMenu(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateMenuItem godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body CreateMenuItemRequest true "Menu item"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu [post]
func (h *MenuHandler) CreateMenuItem(c echo.Context, _ auth.Identity) error {
	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	if !req.Price.IsPositive() {
		return respondError(errors.ErrInvalidAmount)
	}

	res, err := h.svc.CreateMenuItem(c.Request().Context(), &model.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c echo.Context, _ auth.Identity) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(errors.ErrInvalidID)
	}

	res, err := h.svc.DeleteMenuItem(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}
