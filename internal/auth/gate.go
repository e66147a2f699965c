package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
)

// UserLookup is the slice of the user directory the admin check needs.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Gate holds the role check applied after authentication.
type Gate struct {
	users UserLookup
}

// NewGate creates a gate backed by the user directory.
func NewGate(users UserLookup) *Gate {
	return &Gate{users: users}
}

// RequireAdmin fails with ErrForbidden unless the stored user behind id has
// the admin role. An unknown user is treated as a non-admin.
func (g *Gate) RequireAdmin(ctx context.Context, id Identity) error {
	user, err := g.users.FindByEmail(ctx, id.Email())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrForbidden
		}
		return apperrors.Store("find user by email", err)
	}
	if !user.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireSelf fails with ErrForbidden when email is not the caller's own.
func RequireSelf(id Identity, email string) error {
	if id.Email() != email {
		return apperrors.ErrForbidden
	}
	return nil
}
