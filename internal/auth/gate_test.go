package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
)

// MockUserLookup is a mock implementation of UserLookup.
type MockUserLookup struct {
	mock.Mock
}

func (m *MockUserLookup) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestGate_RequireAdmin(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockUserLookup)
		wantErr   error
	}{
		{
			name: "admin passes",
			setupMock: func(m *MockUserLookup) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com", Role: model.RoleAdmin}, nil)
			},
		},
		{
			name: "customer is forbidden",
			setupMock: func(m *MockUserLookup) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com", Role: model.RoleCustomer}, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name: "unknown user is forbidden",
			setupMock: func(m *MockUserLookup) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name: "store failure",
			setupMock: func(m *MockUserLookup) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("connection refused"))
			},
			wantErr: apperrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserLookup)
			tt.setupMock(users)

			gate := NewGate(users)
			err := gate.RequireAdmin(context.Background(), Identity{claims: IdentityClaims{Email: "a@x.com"}})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestRequireSelf(t *testing.T) {
	id := Identity{claims: IdentityClaims{Email: "b@x.com"}}

	assert.NoError(t, RequireSelf(id, "b@x.com"))
	assert.ErrorIs(t, RequireSelf(id, "a@x.com"), apperrors.ErrForbidden)
}
