package middleware

import (
	"context"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"bistro/internal/auth"
	apperrors "bistro/internal/errors"
)

const identityKey = "identity"

// HandlerFunc is an echo handler that runs only after authentication and
// receives the verified caller.
type HandlerFunc func(c echo.Context, id auth.Identity) error

// TokenVerifier verifies bearer tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// AdminChecker decides whether an authenticated caller has the admin role.
type AdminChecker interface {
	RequireAdmin(ctx context.Context, id auth.Identity) error
}

// Gate adapts the authorization checks to echo handlers.
type Gate struct {
	jwt    echo.MiddlewareFunc
	admins AdminChecker
	log    logrus.FieldLogger
}

// NewGate builds the bearer-token extractor once for all protected routes.
func NewGate(tokens TokenVerifier, admins AdminChecker, log logrus.FieldLogger) *Gate {
	g := &Gate{admins: admins, log: log}
	g.jwt = echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			g.log.WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Debug("authentication rejected")
			return httpError(apperrors.ErrUnauthorized)
		},
	})
	return g
}

// Authenticated requires a valid bearer token and passes the decoded
// identity to next.
func (g *Gate) Authenticated(next HandlerFunc) echo.HandlerFunc {
	return g.jwt(func(c echo.Context) error {
		id, ok := c.Get(identityKey).(auth.Identity)
		if !ok {
			return httpError(apperrors.ErrUnauthorized)
		}
		return next(c, id)
	})
}

// AdminOnly requires the authenticated caller to hold the admin role. It can
// only be composed inside Authenticated.
func (g *Gate) AdminOnly(next HandlerFunc) HandlerFunc {
	return func(c echo.Context, id auth.Identity) error {
		if err := g.admins.RequireAdmin(c.Request().Context(), id); err != nil {
			g.log.WithFields(logrus.Fields{
				"path":  c.Path(),
				"email": id.Email(),
			}).WithError(err).Info("admin access denied")
			return httpError(err)
		}
		return next(c, id)
	}
}

func httpError(err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
