package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/errors"
)

// respondError renders a domain error with the status MapErrorToHTTP picks.
func respondError(err error) error {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error:   true,
		Message: message,
		Code:    code,
	})
}

// MessageResponse is a plain informational reply.
type MessageResponse struct {
	Message string `json:"message"`
}
