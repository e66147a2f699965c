package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistro/internal/model"
)

// MenuRepository defines menu catalog persistence operations.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	Save(ctx context.Context, item *model.MenuItem) error
	List(ctx context.Context) ([]model.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// Create creates a new menu item.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save inserts or updates a menu item by primary key.
func (r *menuRepository) Save(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// List lists every menu item.
func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Order("category asc, name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a menu item and returns how many rows were affected.
func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItem{})
	return res.RowsAffected, res.Error
}

// Count counts live menu items.
func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
