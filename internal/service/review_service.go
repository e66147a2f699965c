package service

import (
	"context"
	"time"

	"bistro/internal/cache"
	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

const (
	reviewsCacheKey = "reviews:all"
	reviewsCacheTTL = 10 * time.Minute
)

// ReviewService lists customer reviews.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	repo  repository.ReviewRepository
	cache *cache.Client
}

// NewReviewService builds a ReviewService with repository and cache.
func NewReviewService(repo repository.ReviewRepository, cache *cache.Client) ReviewService {
	return &reviewService{repo: repo, cache: cache}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	var cached []model.Review
	if s.cache.GetJSON(ctx, reviewsCacheKey, &cached) {
		return cached, nil
	}

	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Store("list reviews", err)
	}
	s.cache.SetJSON(ctx, reviewsCacheKey, reviews, reviewsCacheTTL)
	return reviews, nil
}
