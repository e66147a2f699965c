package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/auth"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(claims auth.IdentityClaims) (string, error)
}

// TokenHandler issues session tokens.
type TokenHandler struct {
	tokens TokenIssuer
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(tokens TokenIssuer) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// TokenResponse carries a signed session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken godoc
// @Summary Issue a session token
// @Description Signs the posted identity claims. The email is not checked against stored users.
// @Tags auth
// @Accept json
// @Produce json
// @Param claims body auth.IdentityClaims true "Identity claims"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /token [post]
func (h *TokenHandler) IssueToken(c echo.Context) error {
	var claims auth.IdentityClaims
	if err := c.Bind(&claims); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
