package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bistro/internal/cache"
	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

// MenuService exposes the menu catalog.
type MenuService interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *model.MenuItem) (model.InsertResult, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) (model.DeleteResult, error)
}

type menuService struct {
	repo  repository.MenuRepository
	cache *cache.Client
	log   logrus.FieldLogger
}

// NewMenuService builds a MenuService with repository and cache.
func NewMenuService(repo repository.MenuRepository, cache *cache.Client, log logrus.FieldLogger) MenuService {
	return &menuService{repo: repo, cache: cache, log: log}
}

func (s *menuService) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	var cached []model.MenuItem
	if s.cache.GetJSON(ctx, menuCacheKey, &cached) {
		return cached, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Store("list menu", err)
	}
	s.cache.SetJSON(ctx, menuCacheKey, items, menuCacheTTL)
	return items, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, item *model.MenuItem) (model.InsertResult, error) {
	item.ID = uuid.Nil
	if err := s.repo.Create(ctx, item); err != nil {
		return model.InsertResult{}, apperrors.Store("create menu item", err)
	}
	_ = s.cache.Delete(ctx, menuCacheKey)

	s.log.WithFields(logrus.Fields{
		"menu_item_id": item.ID,
		"name":         item.Name,
		"price":        item.Price.String(),
	}).Info("menu item created")
	return model.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) (model.DeleteResult, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, apperrors.Store("delete menu item", err)
	}
	if deleted > 0 {
		_ = s.cache.Delete(ctx, menuCacheKey)
	}

	s.log.WithFields(logrus.Fields{
		"menu_item_id": id,
		"deleted":      deleted,
	}).Info("menu item deleted")
	return model.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
