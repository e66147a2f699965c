package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// CartService manages per-user pending line items.
type CartService interface {
	ListCart(ctx context.Context, email string) ([]model.CartItem, error)
	AddToCart(ctx context.Context, item *model.CartItem) (model.InsertResult, error)
	RemoveFromCart(ctx context.Context, id uuid.UUID) (model.DeleteResult, error)
}

type cartService struct {
	repo repository.CartRepository
}

// NewCartService builds a CartService.
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

// ListCart returns an empty list for an empty email.
func (s *cartService) ListCart(ctx context.Context, email string) ([]model.CartItem, error) {
	if email == "" {
		return []model.CartItem{}, nil
	}
	items, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Store("list cart", err)
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

func (s *cartService) AddToCart(ctx context.Context, item *model.CartItem) (model.InsertResult, error) {
	item.ID = uuid.Nil
	if err := s.repo.Create(ctx, item); err != nil {
		return model.InsertResult{}, apperrors.Store("create cart item", err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, id uuid.UUID) (model.DeleteResult, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, apperrors.Store("delete cart item", err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
