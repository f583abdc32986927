package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"agriconnect/internal/auth"
	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/model"
)

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("rotates salt and hash", func(t *testing.T) {
		user := testUser("thandi", "old-pass", "Farmer")
		oldSalt := user.PasswordSalt
		oldHash := user.PasswordHash

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.PasswordSalt != oldSalt && u.PasswordHash != oldHash &&
				auth.VerifyPassword("new-pass", u.PasswordHash, u.PasswordSalt)
		})).Return(nil)

		service := NewUserService(userRepo)
		err := service.ChangePassword(context.Background(), user.ID, "old-pass", "new-pass")

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("wrong current password refuses", func(t *testing.T) {
		user := testUser("thandi", "old-pass", "Farmer")
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		service := NewUserService(userRepo)
		err := service.ChangePassword(context.Background(), user.ID, "not-the-pass", "new-pass")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("excludes own row from uniqueness checks", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("WithTransaction", mock.Anything).Return(nil)
		userRepo.On("UsernameExists", mock.Anything, "thandi", uint(7)).Return(false, nil)
		userRepo.On("EmailExists", mock.Anything, "thandi@example.com", uint(7)).Return(false, nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(userRepo)
		err := service.Update(context.Background(), &model.User{ID: 7, Username: "thandi", Email: "thandi@example.com"})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("refuses a username held by another account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("WithTransaction", mock.Anything).Return(nil)
		userRepo.On("UsernameExists", mock.Anything, "sipho", uint(7)).Return(true, nil)

		service := NewUserService(userRepo)
		err := service.Update(context.Background(), &model.User{ID: 7, Username: "sipho", Email: "thandi@example.com"})

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})
}

func TestUserService_SetActive(t *testing.T) {
	user := testUser("thandi", "s3cret-pass", "Farmer")
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return !u.Active
	})).Return(nil)

	service := NewUserService(userRepo)
	err := service.SetActive(context.Background(), user.ID, false)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	t.Run("unknown user yields not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(userRepo)
		err := service.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
