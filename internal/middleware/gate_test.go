package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bistro/internal/auth"
	apperrors "bistro/internal/errors"
	"bistro/internal/logging"
)

// MockAdminChecker is a mock implementation of AdminChecker.
type MockAdminChecker struct {
	mock.Mock
}

func (m *MockAdminChecker) RequireAdmin(ctx context.Context, id auth.Identity) error {
	args := m.Called(ctx, id.Email())
	return args.Error(0)
}

func newTestGate(t *testing.T, admins AdminChecker) (*Gate, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewGate(tokens, admins, logging.Discard()), tokens
}

func serve(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGate_Authenticated(t *testing.T) {
	gate, tokens := newTestGate(t, new(MockAdminChecker))
	valid, err := tokens.Issue(auth.IdentityClaims{Email: "a@x.com"})
	require.NoError(t, err)

	e := echo.New()
	e.GET("/me", gate.Authenticated(func(c echo.Context, id auth.Identity) error {
		return c.String(http.StatusOK, id.Email())
	}))

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", token: valid, wantStatus: http.StatusOK, wantBody: "a@x.com"},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: apperrors.ErrUnauthorized.Error()},
		{name: "invalid token", token: "garbage", wantStatus: http.StatusUnauthorized, wantBody: apperrors.ErrUnauthorized.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, "/me", tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestGate_AdminOnly(t *testing.T) {
	admins := new(MockAdminChecker)
	admins.On("RequireAdmin", mock.Anything, "admin@x.com").Return(nil)
	admins.On("RequireAdmin", mock.Anything, "user@x.com").Return(apperrors.ErrForbidden)

	gate, tokens := newTestGate(t, admins)
	adminToken, err := tokens.Issue(auth.IdentityClaims{Email: "admin@x.com"})
	require.NoError(t, err)
	userToken, err := tokens.Issue(auth.IdentityClaims{Email: "user@x.com"})
	require.NoError(t, err)

	called := 0
	e := echo.New()
	e.DELETE("/menu/:id", gate.Authenticated(gate.AdminOnly(func(c echo.Context, id auth.Identity) error {
		called++
		return c.NoContent(http.StatusOK)
	})))

	rec := serve(e, http.MethodDelete, "/menu/1", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"forbidden access"`)
	assert.Equal(t, 0, called)

	rec = serve(e, http.MethodDelete, "/menu/1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, called)

	rec = serve(e, http.MethodDelete, "/menu/1", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, called)

	admins.AssertExpectations(t)
}
