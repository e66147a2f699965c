package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistro/internal/model"
)

// CartRepository defines cart item persistence operations.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// DeleteByIDs removes every listed item regardless of owner.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *cartRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.CartItem{})
	return res.RowsAffected, res.Error
}
