package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "bistro/internal/errors"
	"bistro/internal/logging"
	"bistro/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id uint, role model.Role) (int64, int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name: "new user is stored as customer",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "a@x.com" && u.Role == model.RoleCustomer
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 7
				}).Return(nil)
			},
		},
		{
			name: "existing user is not duplicated",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name: "losing a concurrent insert reports existing user",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name: "lookup failure",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("connection refused"))
			},
			wantErr: apperrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewUserService(repo, logging.Discard())
			res, err := svc.CreateUser(context.Background(), &model.User{Email: "a@x.com", Name: "A", Role: model.RoleAdmin})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, res.Acknowledged)
			} else {
				assert.NoError(t, err)
				assert.True(t, res.Acknowledged)
				assert.Equal(t, uint(7), res.InsertedID)
			}
			repo.AssertExpectations(t)
		})
	}

	t.Run("existing user never reaches create", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com"}, nil)

		_, _ = NewUserService(repo, logging.Discard()).CreateUser(context.Background(), &model.User{Email: "a@x.com"})
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "admin@x.com").Return(&model.User{Role: model.RoleAdmin}, nil)
	repo.On("FindByEmail", mock.Anything, "user@x.com").Return(&model.User{Role: model.RoleCustomer}, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo, logging.Discard())

	ok, err := svc.IsAdmin(context.Background(), "admin@x.com")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(context.Background(), "user@x.com")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAdmin(context.Background(), "ghost@x.com")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUserService_PromoteToAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("SetRole", mock.Anything, uint(3), model.RoleAdmin).Return(int64(1), int64(1), nil)

	res, err := NewUserService(repo, logging.Discard()).PromoteToAdmin(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)
	repo.AssertExpectations(t)
}
