package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bistro/internal/auth"
	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/service"
)

// UserHandler bundles user directory handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the profile posted on first sign-in.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// AdminStatusResponse reports whether the caller is an admin.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 503 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create user
// @Description Stores a first-time user. An existing email yields a message instead of a second record.
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 200 {object} model.InsertResult
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}

	res, err := h.svc.CreateUser(c.Request().Context(), &model.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			return c.JSON(http.StatusOK, MessageResponse{Message: "User Already Exists."})
		}
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// AdminStatus godoc
// @Summary Check admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {object} AdminStatusResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context, id auth.Identity) error {
	email := c.Param("email")
	if err := auth.RequireSelf(id, email); err != nil {
		return respondError(err)
	}

	admin, err := h.svc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, AdminStatusResponse{Admin: admin})
}

// PromoteToAdmin godoc
// @Summary Grant the admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{id} [patch]
func (h *UserHandler) PromoteToAdmin(c echo.Context, _ auth.Identity) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(apperrors.ErrInvalidID)
	}

	res, err := h.svc.PromoteToAdmin(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}
