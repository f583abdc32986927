package repository

import (
	"context"

	"gorm.io/gorm"

	"agriconnect/internal/model"
)

// EnergySolutionRepository defines energy solution persistence operations.
type EnergySolutionRepository interface {
	Create(ctx context.Context, solution *model.EnergySolution) error
	Update(ctx context.Context, solution *model.EnergySolution) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.EnergySolution, error)
	List(ctx context.Context) ([]model.EnergySolution, error)
	ListByProviderID(ctx context.Context, providerID uint) ([]model.EnergySolution, error)
	ListByCategoryID(ctx context.Context, categoryID uint) ([]model.EnergySolution, error)
	ListAvailable(ctx context.Context, limit int) ([]model.EnergySolution, error)
	CountAll(ctx context.Context) (int64, error)
}

type energySolutionRepository struct {
	db *gorm.DB
}

// NewEnergySolutionRepository creates a new energy solution repository.
func NewEnergySolutionRepository(db *gorm.DB) EnergySolutionRepository {
	return &energySolutionRepository{db: db}
}

func (r *energySolutionRepository) Create(ctx context.Context, solution *model.EnergySolution) error {
	return r.db.WithContext(ctx).Create(solution).Error
}

func (r *energySolutionRepository) Update(ctx context.Context, solution *model.EnergySolution) error {
	return r.db.WithContext(ctx).Save(solution).Error
}

func (r *energySolutionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.EnergySolution{}, id).Error
}

func (r *energySolutionRepository) FindByID(ctx context.Context, id uint) (*model.EnergySolution, error) {
	var solution model.EnergySolution
	if err := r.db.WithContext(ctx).Preload("Provider").Preload("Category").
		First(&solution, id).Error; err != nil {
		return nil, err
	}
	return &solution, nil
}

func (r *energySolutionRepository) List(ctx context.Context) ([]model.EnergySolution, error) {
	var solutions []model.EnergySolution
	if err := r.db.WithContext(ctx).Preload("Provider").Preload("Category").
		Order("created_at DESC").Find(&solutions).Error; err != nil {
		return nil, err
	}
	return solutions, nil
}

func (r *energySolutionRepository) ListByProviderID(ctx context.Context, providerID uint) ([]model.EnergySolution, error) {
	var solutions []model.EnergySolution
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").Find(&solutions).Error; err != nil {
		return nil, err
	}
	return solutions, nil
}

func (r *energySolutionRepository) ListByCategoryID(ctx context.Context, categoryID uint) ([]model.EnergySolution, error) {
	var solutions []model.EnergySolution
	if err := r.db.WithContext(ctx).Preload("Provider").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").Find(&solutions).Error; err != nil {
		return nil, err
	}
	return solutions, nil
}

// ListAvailable returns the newest available solutions, capped at limit
// when limit > 0. Backs the featured listing.
func (r *energySolutionRepository) ListAvailable(ctx context.Context, limit int) ([]model.EnergySolution, error) {
	var solutions []model.EnergySolution
	q := r.db.WithContext(ctx).Preload("Provider").Preload("Category").
		Where("available = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&solutions).Error; err != nil {
		return nil, err
	}
	return solutions, nil
}

func (r *energySolutionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.EnergySolution{}).Count(&count).Error
	return count, err
}

// EnergySolutionCategoryRepository defines solution category lookups.
type EnergySolutionCategoryRepository interface {
	Create(ctx context.Context, category *model.EnergySolutionCategory) error
	FindByID(ctx context.Context, id uint) (*model.EnergySolutionCategory, error)
	ListActive(ctx context.Context) ([]model.EnergySolutionCategory, error)
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)
}

type energySolutionCategoryRepository struct {
	db *gorm.DB
}

// NewEnergySolutionCategoryRepository creates a new solution category repository.
func NewEnergySolutionCategoryRepository(db *gorm.DB) EnergySolutionCategoryRepository {
	return &energySolutionCategoryRepository{db: db}
}

func (r *energySolutionCategoryRepository) Create(ctx context.Context, category *model.EnergySolutionCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *energySolutionCategoryRepository) FindByID(ctx context.Context, id uint) (*model.EnergySolutionCategory, error) {
	var category model.EnergySolutionCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *energySolutionCategoryRepository) ListActive(ctx context.Context) ([]model.EnergySolutionCategory, error) {
	var categories []model.EnergySolutionCategory
	if err := r.db.WithContext(ctx).Where("active = ?", true).
		Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *energySolutionCategoryRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.EnergySolutionCategory{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
