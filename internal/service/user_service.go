package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// ErrUserAlreadyExists is returned when a user with the same email is already stored.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserService exposes the user directory.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, user *model.User) (model.InsertResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id uint) (model.UpdateResult, error)
}

type userService struct {
	repo repository.UserRepository
	log  logrus.FieldLogger
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, log logrus.FieldLogger) UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Store("list users", err)
	}
	return users, nil
}

// CreateUser stores a first-time user with the customer role. The lookup and
// insert are not atomic; the unique email index rejects the losing insert.
func (s *userService) CreateUser(ctx context.Context, user *model.User) (model.InsertResult, error) {
	_, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return model.InsertResult{}, ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.InsertResult{}, apperrors.Store("find user by email", err)
	}

	user.ID = 0
	user.Role = model.RoleCustomer
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.InsertResult{}, ErrUserAlreadyExists
		}
		return model.InsertResult{}, apperrors.Store("create user", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("user created")
	return model.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

// IsAdmin reports false for unknown emails.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Store("find user by email", err)
	}
	return user.IsAdmin(), nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, id uint) (model.UpdateResult, error) {
	matched, modified, err := s.repo.SetRole(ctx, id, model.RoleAdmin)
	if err != nil {
		return model.UpdateResult{}, apperrors.Store("set user role", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  id,
		"matched":  matched,
		"modified": modified,
	}).Info("user promoted to admin")
	return model.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}
