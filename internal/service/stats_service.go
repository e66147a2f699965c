package service

import (
	"context"

	"github.com/shopspring/decimal"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// StatsService derives the admin dashboard counters.
type StatsService interface {
	Stats(ctx context.Context) (model.Stats, error)
}

type statsService struct {
	users    repository.UserRepository
	menu     repository.MenuRepository
	payments repository.PaymentRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(users repository.UserRepository, menu repository.MenuRepository, payments repository.PaymentRepository) StatsService {
	return &statsService{users: users, menu: menu, payments: payments}
}

// Stats is recomputed on every call. Revenue is the exact sum of every ledger price.
func (s *statsService) Stats(ctx context.Context) (model.Stats, error) {
	customers, err := s.users.Count(ctx)
	if err != nil {
		return model.Stats{}, apperrors.Store("count users", err)
	}
	products, err := s.menu.Count(ctx)
	if err != nil {
		return model.Stats{}, apperrors.Store("count menu items", err)
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return model.Stats{}, apperrors.Store("count payments", err)
	}
	prices, err := s.payments.Prices(ctx)
	if err != nil {
		return model.Stats{}, apperrors.Store("load payment prices", err)
	}

	revenue := decimal.Zero
	for _, p := range prices {
		revenue = revenue.Add(p)
	}

	return model.Stats{
		Customers: customers,
		Products:  products,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}
