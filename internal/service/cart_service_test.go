package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bistro/internal/model"
)

func TestCartService_ListCart(t *testing.T) {
	t.Run("empty email returns empty list without a store call", func(t *testing.T) {
		repo := new(MockCartRepository)
		items, err := NewCartService(repo).ListCart(context.Background(), "")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		repo.AssertNotCalled(t, "ListByEmail", mock.Anything, mock.Anything)
	})

	t.Run("lists owner items", func(t *testing.T) {
		want := []model.CartItem{{ID: uuid.New(), Email: "a@x.com"}}
		repo := new(MockCartRepository)
		repo.On("ListByEmail", mock.Anything, "a@x.com").Return(want, nil)

		items, err := NewCartService(repo).ListCart(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, want, items)
	})
}

func TestCartService_AddAndRemove(t *testing.T) {
	id := uuid.New()
	repo := new(MockCartRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.CartItem")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.CartItem).ID = id
	}).Return(nil)
	repo.On("Delete", mock.Anything, id).Return(int64(1), nil)

	svc := NewCartService(repo)

	ins, err := svc.AddToCart(context.Background(), &model.CartItem{Email: "a@x.com", Name: "Soup"})
	require.NoError(t, err)
	assert.Equal(t, id, ins.InsertedID)

	del, err := svc.RemoveFromCart(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
	repo.AssertExpectations(t)
}
