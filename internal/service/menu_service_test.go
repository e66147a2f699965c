package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "bistro/internal/errors"
	"bistro/internal/logging"
	"bistro/internal/model"
)

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Save(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func TestMenuService_ListMenu_WithoutCache(t *testing.T) {
	items := []model.MenuItem{{ID: uuid.New(), Name: "Soup", Price: decimal.RequireFromString("4.50")}}
	repo := new(MockMenuRepository)
	repo.On("List", mock.Anything).Return(items, nil).Twice()

	svc := NewMenuService(repo, nil, logging.Discard())

	for i := 0; i < 2; i++ {
		got, err := svc.ListMenu(context.Background())
		require.NoError(t, err)
		assert.Equal(t, items, got)
	}
	repo.AssertExpectations(t)
}

func TestMenuService_CreateMenuItem(t *testing.T) {
	repo := new(MockMenuRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.MenuItem")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.MenuItem).ID = uuid.MustParse("6f1c3b7e-1d2a-4c8e-9b0a-1f2e3d4c5b6a")
	}).Return(nil)

	res, err := NewMenuService(repo, nil, logging.Discard()).CreateMenuItem(context.Background(), &model.MenuItem{Name: "Salad"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, uuid.MustParse("6f1c3b7e-1d2a-4c8e-9b0a-1f2e3d4c5b6a"), res.InsertedID)
}

func TestMenuService_DeleteMenuItem(t *testing.T) {
	id := uuid.New()

	repo := new(MockMenuRepository)
	repo.On("Delete", mock.Anything, id).Return(int64(1), nil)
	res, err := NewMenuService(repo, nil, logging.Discard()).DeleteMenuItem(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.DeleteResult{Acknowledged: true, DeletedCount: 1}, res)

	failing := new(MockMenuRepository)
	failing.On("Delete", mock.Anything, id).Return(int64(0), errors.New("connection refused"))
	_, err = NewMenuService(failing, nil, logging.Discard()).DeleteMenuItem(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestReviewService_ListReviews(t *testing.T) {
	reviews := []model.Review{{ID: uuid.New(), Name: "Jane", Rating: 4.5}}
	repo := new(MockReviewRepository)
	repo.On("List", mock.Anything).Return(reviews, nil)

	got, err := NewReviewService(repo, nil).ListReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}
