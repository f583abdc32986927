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

// The nil cache client degrades to a no-op, so Stats always recomputes.
func newTestEmployeeService(
	employeeRepo *MockEmployeeRepository,
	farmerRepo *MockFarmerRepository,
	productRepo *MockProductRepository,
	solutionRepo *MockEnergySolutionRepository,
	providerRepo *MockEnergySolutionProviderRepository,
) EmployeeService {
	return NewEmployeeService(employeeRepo, farmerRepo, productRepo, solutionRepo, providerRepo, nil)
}

func TestEmployeeService_VerifyFarmer(t *testing.T) {
	t.Run("marks an unverified farmer", func(t *testing.T) {
		farmerRepo := new(MockFarmerRepository)
		farmerRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Farmer{ID: 3, Verified: false}, nil)
		farmerRepo.On("Update", mock.Anything, mock.MatchedBy(func(f *model.Farmer) bool {
			return f.Verified
		})).Return(nil)

		service := newTestEmployeeService(new(MockEmployeeRepository), farmerRepo, new(MockProductRepository), new(MockEnergySolutionRepository), new(MockEnergySolutionProviderRepository))
		err := service.VerifyFarmer(context.Background(), 3)

		assert.NoError(t, err)
		farmerRepo.AssertExpectations(t)
	})

	t.Run("already verified is a no-op", func(t *testing.T) {
		farmerRepo := new(MockFarmerRepository)
		farmerRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Farmer{ID: 3, Verified: true}, nil)

		service := newTestEmployeeService(new(MockEmployeeRepository), farmerRepo, new(MockProductRepository), new(MockEnergySolutionRepository), new(MockEnergySolutionProviderRepository))
		err := service.VerifyFarmer(context.Background(), 3)

		assert.NoError(t, err)
		farmerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown farmer yields not found", func(t *testing.T) {
		farmerRepo := new(MockFarmerRepository)
		farmerRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := newTestEmployeeService(new(MockEmployeeRepository), farmerRepo, new(MockProductRepository), new(MockEnergySolutionRepository), new(MockEnergySolutionProviderRepository))
		err := service.VerifyFarmer(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestEmployeeService_Stats(t *testing.T) {
	farmerRepo := new(MockFarmerRepository)
	farmerRepo.On("CountAll", mock.Anything).Return(int64(40), nil)
	farmerRepo.On("CountVerified", mock.Anything).Return(int64(25), nil)
	farmerRepo.On("CountCreatedSince", mock.Anything, mock.Anything).Return(int64(2), nil)

	productRepo := new(MockProductRepository)
	productRepo.On("CountAll", mock.Anything).Return(int64(120), nil)
	productRepo.On("CountCreatedSince", mock.Anything, mock.Anything).Return(int64(5), nil)

	solutionRepo := new(MockEnergySolutionRepository)
	solutionRepo.On("CountAll", mock.Anything).Return(int64(18), nil)

	providerRepo := new(MockEnergySolutionProviderRepository)
	providerRepo.On("CountAll", mock.Anything).Return(int64(6), nil)

	service := newTestEmployeeService(new(MockEmployeeRepository), farmerRepo, productRepo, solutionRepo, providerRepo)
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(40), stats.TotalFarmers)
	assert.Equal(t, int64(25), stats.VerifiedFarmers)
	assert.Equal(t, int64(15), stats.PendingFarmers)
	assert.Equal(t, int64(2), stats.FarmersToday)
	assert.Equal(t, int64(120), stats.TotalProducts)
	assert.Equal(t, int64(5), stats.ProductsToday)
	assert.Equal(t, int64(18), stats.TotalSolutions)
	assert.Equal(t, int64(6), stats.TotalProviders)
}
