package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"agriconnect/internal/model"
)

// FarmerRepository defines farmer profile persistence operations.
type FarmerRepository interface {
	Create(ctx context.Context, farmer *model.Farmer) error
	Update(ctx context.Context, farmer *model.Farmer) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Farmer, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Farmer, error)
	List(ctx context.Context) ([]model.Farmer, error)
	CountAll(ctx context.Context) (int64, error)
	CountVerified(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository creates a new farmer repository.
func NewFarmerRepository(db *gorm.DB) FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) Create(ctx context.Context, farmer *model.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

func (r *farmerRepository) Update(ctx context.Context, farmer *model.Farmer) error {
	return r.db.WithContext(ctx).Save(farmer).Error
}

func (r *farmerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Farmer{}, id).Error
}

func (r *farmerRepository) FindByID(ctx context.Context, id uint) (*model.Farmer, error) {
	var farmer model.Farmer
	if err := r.db.WithContext(ctx).Preload("User").Preload("Products").
		First(&farmer, id).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

// FindByUserID resolves the profile belonging to an authenticated
// principal. gorm.ErrRecordNotFound signals that the profile has not
// been created yet.
func (r *farmerRepository) FindByUserID(ctx context.Context, userID uint) (*model.Farmer, error) {
	var farmer model.Farmer
	if err := r.db.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) List(ctx context.Context) ([]model.Farmer, error) {
	var farmers []model.Farmer
	if err := r.db.WithContext(ctx).Preload("User").
		Order("farm_name").Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}

func (r *farmerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Farmer{}).Count(&count).Error
	return count, err
}

func (r *farmerRepository) CountVerified(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Farmer{}).Where("verified = ?", true).Count(&count).Error
	return count, err
}

func (r *farmerRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Farmer{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
