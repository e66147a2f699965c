package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	apperrors "bistro/internal/errors"
	"bistro/internal/payment"
)

var hundred = decimal.NewFromInt(100)

// PaymentIntentService prepares card payments with the provider.
type PaymentIntentService interface {
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error)
}

type paymentIntentService struct {
	gateway  payment.Gateway
	currency string
	log      logrus.FieldLogger
}

// NewPaymentIntentService creates a new payment intent service.
func NewPaymentIntentService(gateway payment.Gateway, currency string, log logrus.FieldLogger) PaymentIntentService {
	return &paymentIntentService{gateway: gateway, currency: currency, log: log}
}

// CreatePaymentIntent converts price to cents and returns the provider's client secret.
func (s *paymentIntentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	amount := price.Mul(hundred).Round(0).IntPart()
	if amount <= 0 {
		return "", apperrors.ErrInvalidAmount
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"amount":   amount,
			"currency": s.currency,
		}).WithError(err).Error("payment intent failed")
		return "", fmt.Errorf("%w: %v", apperrors.ErrPaymentProvider, err)
	}
	return secret, nil
}
