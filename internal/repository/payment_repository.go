package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bistro/internal/model"
)

// PaymentRepository defines ledger persistence operations. The ledger is
// append-only, so there is no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Count(ctx context.Context) (int64, error)
	Prices(ctx context.Context) ([]decimal.Decimal, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Count counts ledger entries.
func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Prices loads the price of every ledger entry.
func (r *paymentRepository) Prices(ctx context.Context) ([]decimal.Decimal, error) {
	var prices []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).Pluck("price", &prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}
