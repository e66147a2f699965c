package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bistro/internal/auth"
	"bistro/internal/model"
	"bistro/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	intents     service.PaymentIntentService
	settlements service.SettlementService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(intents service.PaymentIntentService, settlements service.SettlementService) *PaymentHandler {
	return &PaymentHandler{intents: intents, settlements: settlements}
}

// PaymentIntentRequest is the order total to charge.
type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

// PaymentIntentResponse carries the provider secret the browser confirms with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettlePaymentRequest is a completed checkout as reported by the client.
type SettlePaymentRequest struct {
	Email         string              `json:"email" validate:"required,email"`
	TransactionID string              `json:"transactionId"`
	Price         decimal.Decimal     `json:"price" swaggertype:"number"`
	Quantity      int                 `json:"quantity"`
	Date          time.Time           `json:"date"`
	Status        model.PaymentStatus `json:"status"`
	ItemNames     []string            `json:"itemNames"`
	CartItems     []uuid.UUID         `json:"cartItems" swaggertype:"array,string"`
	MenuItems     []uuid.UUID         `json:"menuItems" swaggertype:"array,string"`
}

// CreatePaymentIntent godoc
// @Summary Create a card payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentIntentRequest true "Order total"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context, _ auth.Identity) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}

	secret, err := h.intents.CreatePaymentIntent(c.Request().Context(), req.Price)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// SettlePayment godoc
// @Summary Record a payment and clear the paid cart items
// @Description The ledger entry is stored first. Cart removal is best-effort and its outcome is returned as is.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body SettlePaymentRequest true "Completed payment"
// @Success 200 {object} service.SettlementResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) SettlePayment(c echo.Context, _ auth.Identity) error {
	var req SettlePaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}

	res, err := h.settlements.Settle(c.Request().Context(), &model.Payment{
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Price:         req.Price,
		Quantity:      req.Quantity,
		Date:          req.Date,
		Status:        req.Status,
		ItemNames:     req.ItemNames,
		CartItems:     req.CartItems,
		MenuItems:     req.MenuItems,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}
