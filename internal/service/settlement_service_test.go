package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "bistro/internal/errors"
	"bistro/internal/logging"
	"bistro/internal/model"
)

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) Prices(ctx context.Context) ([]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func newPayment(cartItems ...uuid.UUID) *model.Payment {
	return &model.Payment{
		Email:         "a@x.com",
		TransactionID: "pi_123",
		Price:         decimal.RequireFromString("35.50"),
		Quantity:      len(cartItems),
		CartItems:     cartItems,
	}
}

func TestSettlementService_Settle(t *testing.T) {
	item101, item102 := uuid.New(), uuid.New()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name         string
		setupMocks   func(*MockPaymentRepository, *MockCartRepository)
		wantErr      error
		wantDeleted  int64
		wantDeleteOK bool
	}{
		{
			name: "payment stored and cart items removed",
			setupMocks: func(p *MockPaymentRepository, c *MockCartRepository) {
				p.On("Create", mock.Anything, mock.MatchedBy(func(pay *model.Payment) bool {
					return pay.Email == "a@x.com" &&
						pay.Price.Equal(decimal.RequireFromString("35.50")) &&
						assert.ObjectsAreEqual([]uuid.UUID{item101, item102}, pay.CartItems)
				})).Return(nil)
				c.On("DeleteByIDs", mock.Anything, []uuid.UUID{item101, item102}).Return(int64(2), nil)
			},
			wantDeleted:  2,
			wantDeleteOK: true,
		},
		{
			name: "store unavailable skips removal",
			setupMocks: func(p *MockPaymentRepository, c *MockCartRepository) {
				p.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Return(errors.New("connection refused"))
			},
			wantErr: apperrors.ErrStoreUnavailable,
		},
		{
			name: "failed removal still reports success",
			setupMocks: func(p *MockPaymentRepository, c *MockCartRepository) {
				p.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Return(nil)
				c.On("DeleteByIDs", mock.Anything, []uuid.UUID{item101, item102}).Return(int64(0), errors.New("timeout"))
			},
			wantDeleted:  0,
			wantDeleteOK: false,
		},
		{
			name: "short removal is reported as is",
			setupMocks: func(p *MockPaymentRepository, c *MockCartRepository) {
				p.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Return(nil)
				c.On("DeleteByIDs", mock.Anything, []uuid.UUID{item101, item102}).Return(int64(1), nil)
			},
			wantDeleted:  1,
			wantDeleteOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := new(MockPaymentRepository)
			carts := new(MockCartRepository)
			tt.setupMocks(payments, carts)

			svc := NewSettlementService(payments, carts, logging.Discard()).(*settlementService)
			svc.now = func() time.Time { return fixed }

			pay := newPayment(item101, item102)
			res, err := svc.Settle(context.Background(), pay)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				carts.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.True(t, res.InsertResult.Acknowledged)
				assert.Equal(t, tt.wantDeleteOK, res.DeleteResult.Acknowledged)
				assert.Equal(t, tt.wantDeleted, res.DeleteResult.DeletedCount)
				assert.Equal(t, fixed, pay.Date)
			}

			payments.AssertExpectations(t)
			carts.AssertExpectations(t)
		})
	}
}

func TestCountDistinct(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, 0, countDistinct(nil))
	assert.Equal(t, 2, countDistinct([]uuid.UUID{a, b, a}))
}
