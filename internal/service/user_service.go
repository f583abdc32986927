package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"agriconnect/internal/auth"
	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/model"
	"agriconnect/internal/repository"
)

// UserService manages user accounts.
type UserService interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role auth.Role) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	SetActive(ctx context.Context, userID uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) ListByRole(ctx context.Context, role auth.Role) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, role.String())
}

// Update re-checks username and email uniqueness against other
// accounts before persisting.
func (s *userService) Update(ctx context.Context, user *model.User) error {
	err := s.userRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		taken, err := repo.UsernameExists(ctx, user.Username, user.ID)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return apperrors.ErrUsernameTaken
		}

		taken, err = repo.EmailExists(ctx, user.Email, user.ID)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return apperrors.ErrEmailTaken
		}

		return repo.Update(ctx, user)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return collidedUserColumn(ctx, s.userRepo, user)
	}
	return err
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(currentPassword, user.PasswordHash, user.PasswordSalt) {
		return apperrors.ErrInvalidCredentials
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return err
	}
	user.PasswordSalt = salt
	user.PasswordHash = auth.HashPassword(newPassword, salt)
	return s.userRepo.Update(ctx, user)
}

func (s *userService) SetActive(ctx context.Context, userID uint, active bool) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Active = active
	return s.userRepo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
