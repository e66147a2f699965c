package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// SettlementResult reports both writes of a checkout.
type SettlementResult struct {
	InsertResult model.InsertResult `json:"InsertResult"`
	DeleteResult model.DeleteResult `json:"deleteResult"`
}

// SettlementService turns a paid cart into a ledger entry.
type SettlementService interface {
	Settle(ctx context.Context, payment *model.Payment) (SettlementResult, error)
}

type settlementService struct {
	payments repository.PaymentRepository
	carts    repository.CartRepository
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewSettlementService creates a new settlement service.
func NewSettlementService(payments repository.PaymentRepository, carts repository.CartRepository, log logrus.FieldLogger) SettlementService {
	return &settlementService{
		payments: payments,
		carts:    carts,
		log:      log,
		now:      time.Now,
	}
}

// Settle stores the payment as submitted, then removes the referenced cart
// items by id whoever owns them. The two writes are independent: a failed or
// short removal is reported in DeleteResult and logged, never rolled back.
func (s *settlementService) Settle(ctx context.Context, payment *model.Payment) (SettlementResult, error) {
	payment.ID = uuid.Nil
	if payment.Date.IsZero() {
		payment.Date = s.now()
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return SettlementResult{}, apperrors.Store("create payment", err)
	}

	result := SettlementResult{
		InsertResult: model.InsertResult{Acknowledged: true, InsertedID: payment.ID},
	}

	entry := s.log.WithFields(logrus.Fields{
		"payment_id":     payment.ID,
		"email":          payment.Email,
		"transaction_id": payment.TransactionID,
		"price":          payment.Price.String(),
	})

	expected := int64(countDistinct(payment.CartItems))
	deleted, err := s.carts.DeleteByIDs(ctx, payment.CartItems)
	if err != nil {
		entry.WithError(err).Warn("payment stored but cart items were not removed")
		result.DeleteResult = model.DeleteResult{Acknowledged: false, DeletedCount: deleted}
		return result, nil
	}

	result.DeleteResult = model.DeleteResult{Acknowledged: true, DeletedCount: deleted}
	if deleted < expected {
		entry.WithFields(logrus.Fields{
			"expected": expected,
			"deleted":  deleted,
		}).Warn("payment stored but fewer cart items were removed than referenced")
		return result, nil
	}

	entry.Info("payment settled")
	return result, nil
}

func countDistinct(ids []uuid.UUID) int {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
