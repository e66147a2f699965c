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

// CartHandler handles cart endpoints.
type CartHandler struct {
	svc service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// AddToCartRequest is one line item added by a customer.
type AddToCartRequest struct {
	MenuItemID uuid.UUID       `json:"menuItemId" swaggertype:"string" format:"uuid"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Price      decimal.Decimal `json:"price" swaggertype:"number"`
	Email      string          `json:"email" validate:"required,email"`
}

// ListCart godoc
// @Summary List the caller's cart
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param email query string true "Owner email, must match the token"
// @Success 200 {array} model.CartItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /carts [get]
func (h *CartHandler) ListCart(c echo.Context, id auth.Identity) error {
	email := c.QueryParam("email")
	if email != "" {
		if err := auth.RequireSelf(id, email); err != nil {
			return respondError(err)
		}
	}

	items, err := h.svc.ListCart(c.Request().Context(), email)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// AddToCart godoc
// @Summary Add an item to a cart
// @Tags carts
// @Accept json
// @Produce json
// @Param item body AddToCartRequest true "Cart item"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /carts [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}

	res, err := h.svc.AddToCart(c.Request().Context(), &model.CartItem{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Email:      req.Email,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// RemoveFromCart godoc
// @Summary Remove a cart item
// @Tags carts
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(errors.ErrInvalidID)
	}

	res, err := h.svc.RemoveFromCart(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}
