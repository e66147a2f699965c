package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bistro/internal/config"
	"bistro/internal/handler"
	"bistro/internal/logging"
	authmw "bistro/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Token   *handler.TokenHandler
	User    *handler.UserHandler
	Menu    *handler.MenuHandler
	Review  *handler.ReviewHandler
	Cart    *handler.CartHandler
	Payment *handler.PaymentHandler
	Stats   *handler.StatsHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log logrus.FieldLogger, gate *authmw.Gate, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Bistro Boss server is running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/token", h.Token.IssueToken)

	// Users
	e.GET("/users", h.User.ListUsers)
	e.POST("/users", h.User.CreateUser)
	e.GET("/users/admin/:email", gate.Authenticated(h.User.AdminStatus))
	e.PATCH("/users/admin/:id", gate.Authenticated(gate.AdminOnly(h.User.PromoteToAdmin)))

	// Menu and reviews
	e.GET("/menu", h.Menu.ListMenu)
	e.POST("/menu", gate.Authenticated(gate.AdminOnly(h.Menu.CreateMenuItem)))
	e.DELETE("/menu/:id", gate.Authenticated(gate.AdminOnly(h.Menu.DeleteMenuItem)))
	e.GET("/reviews", h.Review.ListReviews)

	// Carts
	e.GET("/carts", gate.Authenticated(h.Cart.ListCart))
	e.POST("/carts", h.Cart.AddToCart)
	e.DELETE("/carts/:id", h.Cart.RemoveFromCart)

	// Payments
	e.POST("/create-payment-intent", gate.Authenticated(h.Payment.CreatePaymentIntent))
	e.POST("/payments", gate.Authenticated(h.Payment.SettlePayment))

	e.GET("/admin-stats", gate.Authenticated(gate.AdminOnly(h.Stats.AdminStats)))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
