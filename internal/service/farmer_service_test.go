package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/model"
)

func TestFarmerService_CreateProfile(t *testing.T) {
	t.Run("first profile for a user succeeds unverified", func(t *testing.T) {
		farmerRepo := new(MockFarmerRepository)
		farmerRepo.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
		farmerRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Farmer) bool {
			return !f.Verified
		})).Return(nil)

		service := NewFarmerService(farmerRepo)
		err := service.CreateProfile(context.Background(), &model.Farmer{UserID: 7, FarmName: "Mooi River Dairy", Verified: true})

		assert.NoError(t, err)
		farmerRepo.AssertExpectations(t)
	})

	t.Run("second profile for the same user refuses", func(t *testing.T) {
		farmerRepo := new(MockFarmerRepository)
		farmerRepo.On("FindByUserID", mock.Anything, uint(7)).Return(&model.Farmer{ID: 1, UserID: 7}, nil)

		service := NewFarmerService(farmerRepo)
		err := service.CreateProfile(context.Background(), &model.Farmer{UserID: 7, FarmName: "Second Farm"})

		assert.ErrorIs(t, err, apperrors.ErrProfileExists)
	})
}

func TestFarmerService_UpdateProfile(t *testing.T) {
	t.Run("updates own profile but never verification", func(t *testing.T) {
		existing := &model.Farmer{ID: 1, UserID: 7, FarmName: "Mooi River Dairy", Verified: true}
		farmerRepo := new(MockFarmerRepository)
		farmerRepo.On("FindByUserID", mock.Anything, uint(7)).Return(existing, nil)
		farmerRepo.On("Update", mock.Anything, mock.MatchedBy(func(f *model.Farmer) bool {
			return f.ID == 1 && f.UserID == 7 && f.FarmName == "Mooi River Organics" && f.Verified
		})).Return(nil)

		service := NewFarmerService(farmerRepo)
		err := service.UpdateProfile(context.Background(), 7, &model.Farmer{FarmName: "Mooi River Organics", Verified: false})

		assert.NoError(t, err)
		farmerRepo.AssertExpectations(t)
	})

	t.Run("missing profile yields not found", func(t *testing.T) {
		farmerRepo := new(MockFarmerRepository)
		farmerRepo.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewFarmerService(farmerRepo)
		err := service.UpdateProfile(context.Background(), 7, &model.Farmer{FarmName: "Anything"})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
