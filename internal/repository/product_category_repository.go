package repository

import (
	"context"

	"gorm.io/gorm"

	"agriconnect/internal/model"
)

// ProductCategoryRepository defines category persistence operations.
// Name lookups are case-insensitive, matching the uniqueness rule.
type ProductCategoryRepository interface {
	Create(ctx context.Context, category *model.ProductCategory) error
	Update(ctx context.Context, category *model.ProductCategory) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.ProductCategory, error)
	FindByName(ctx context.Context, name string) (*model.ProductCategory, error)
	List(ctx context.Context) ([]model.ProductCategory, error)
	ListActive(ctx context.Context) ([]model.ProductCategory, error)
	ListChildren(ctx context.Context, parentID uint) ([]model.ProductCategory, error)
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)
	CountChildren(ctx context.Context, parentID uint) (int64, error)
}

type productCategoryRepository struct {
	db *gorm.DB
}

// NewProductCategoryRepository creates a new category repository.
func NewProductCategoryRepository(db *gorm.DB) ProductCategoryRepository {
	return &productCategoryRepository{db: db}
}

func (r *productCategoryRepository) Create(ctx context.Context, category *model.ProductCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *productCategoryRepository) Update(ctx context.Context, category *model.ProductCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *productCategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ProductCategory{}, id).Error
}

func (r *productCategoryRepository) FindByID(ctx context.Context, id uint) (*model.ProductCategory, error) {
	var category model.ProductCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *productCategoryRepository) FindByName(ctx context.Context, name string) (*model.ProductCategory, error) {
	var category model.ProductCategory
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *productCategoryRepository) List(ctx context.Context) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *productCategoryRepository) ListActive(ctx context.Context) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	if err := r.db.WithContext(ctx).Where("active = ?", true).
		Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *productCategoryRepository) ListChildren(ctx context.Context, parentID uint) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	if err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).
		Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *productCategoryRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.ProductCategory{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productCategoryRepository) CountChildren(ctx context.Context, parentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductCategory{}).
		Where("parent_id = ?", parentID).Count(&count).Error
	return count, err
}
