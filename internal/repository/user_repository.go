package repository

import (
	"context"

	"gorm.io/gorm"

	"bistro/internal/model"
)

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	SetRole(ctx context.Context, id uint, role model.Role) (matched int64, modified int64, err error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns gorm.ErrRecordNotFound when no user has the email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SetRole updates the role of one user. matched is 0 when the id is unknown;
// modified is 0 when the user already had the role.
func (r *userRepository) SetRole(ctx context.Context, id uint, role model.Role) (int64, int64, error) {
	var matched int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&matched).Error; err != nil {
		return 0, 0, err
	}
	if matched == 0 {
		return 0, 0, nil
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND role <> ?", id, role).
		Update("role", role)
	if res.Error != nil {
		return matched, 0, res.Error
	}
	return matched, res.RowsAffected, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
