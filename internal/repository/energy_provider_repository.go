package repository

import (
	"context"

	"gorm.io/gorm"

	"agriconnect/internal/model"
)

// EnergySolutionProviderRepository defines provider persistence operations.
type EnergySolutionProviderRepository interface {
	Create(ctx context.Context, provider *model.EnergySolutionProvider) error
	Update(ctx context.Context, provider *model.EnergySolutionProvider) error
	FindByID(ctx context.Context, id uint) (*model.EnergySolutionProvider, error)
	ListActive(ctx context.Context) ([]model.EnergySolutionProvider, error)
	CountAll(ctx context.Context) (int64, error)
}

type energySolutionProviderRepository struct {
	db *gorm.DB
}

// NewEnergySolutionProviderRepository creates a new provider repository.
func NewEnergySolutionProviderRepository(db *gorm.DB) EnergySolutionProviderRepository {
	return &energySolutionProviderRepository{db: db}
}

func (r *energySolutionProviderRepository) Create(ctx context.Context, provider *model.EnergySolutionProvider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *energySolutionProviderRepository) Update(ctx context.Context, provider *model.EnergySolutionProvider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}

func (r *energySolutionProviderRepository) FindByID(ctx context.Context, id uint) (*model.EnergySolutionProvider, error) {
	var provider model.EnergySolutionProvider
	if err := r.db.WithContext(ctx).Preload("Solutions").Preload("Solutions.Category").
		First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *energySolutionProviderRepository) ListActive(ctx context.Context) ([]model.EnergySolutionProvider, error) {
	var providers []model.EnergySolutionProvider
	if err := r.db.WithContext(ctx).Where("active = ?", true).
		Order("company_name").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *energySolutionProviderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.EnergySolutionProvider{}).Count(&count).Error
	return count, err
}
