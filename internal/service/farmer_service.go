package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/model"
	"agriconnect/internal/repository"
)

// FarmerService manages farmer profiles.
type FarmerService interface {
	List(ctx context.Context) ([]model.Farmer, error)
	GetByID(ctx context.Context, id uint) (*model.Farmer, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Farmer, error)
	// CreateProfile creates the profile for a user account. Each user
	// owns at most one profile.
	CreateProfile(ctx context.Context, farmer *model.Farmer) error
	UpdateProfile(ctx context.Context, userID uint, farmer *model.Farmer) error
	Delete(ctx context.Context, id uint) error
}

type farmerService struct {
	farmerRepo repository.FarmerRepository
}

// NewFarmerService creates a new farmer service.
func NewFarmerService(farmerRepo repository.FarmerRepository) FarmerService {
	return &farmerService{farmerRepo: farmerRepo}
}

func (s *farmerService) List(ctx context.Context) ([]model.Farmer, error) {
	return s.farmerRepo.List(ctx)
}

func (s *farmerService) GetByID(ctx context.Context, id uint) (*model.Farmer, error) {
	farmer, err := s.farmerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find farmer: %w", err)
	}
	return farmer, nil
}

func (s *farmerService) GetByUserID(ctx context.Context, userID uint) (*model.Farmer, error) {
	farmer, err := s.farmerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find farmer by user: %w", err)
	}
	return farmer, nil
}

func (s *farmerService) CreateProfile(ctx context.Context, farmer *model.Farmer) error {
	_, err := s.farmerRepo.FindByUserID(ctx, farmer.UserID)
	if err == nil {
		return apperrors.ErrProfileExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check profile: %w", err)
	}
	farmer.Verified = false
	return s.farmerRepo.Create(ctx, farmer)
}

// UpdateProfile applies changes to the profile owned by userID. The
// owning user and verification state are not caller-writable.
func (s *farmerService) UpdateProfile(ctx context.Context, userID uint, farmer *model.Farmer) error {
	existing, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	existing.FarmName = farmer.FarmName
	existing.RegistrationNumber = farmer.RegistrationNumber
	existing.EstablishedDate = farmer.EstablishedDate
	existing.Address = farmer.Address
	existing.City = farmer.City
	existing.Province = farmer.Province
	existing.PostalCode = farmer.PostalCode
	existing.FarmSize = farmer.FarmSize
	existing.FarmSizeUnit = farmer.FarmSizeUnit
	existing.FarmingType = farmer.FarmingType
	existing.MainCrops = farmer.MainCrops
	existing.MainLivestock = farmer.MainLivestock
	existing.SustainabilityPractices = farmer.SustainabilityPractices
	existing.ProfileDescription = farmer.ProfileDescription
	existing.EnergyNeeds = farmer.EnergyNeeds

	return s.farmerRepo.Update(ctx, existing)
}

func (s *farmerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.farmerRepo.Delete(ctx, id)
}
