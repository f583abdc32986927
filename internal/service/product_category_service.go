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

// ProductCategoryService manages the product category tree. Names are
// unique regardless of case, and a category carrying products or
// subcategories refuses deletion.
type ProductCategoryService interface {
	List(ctx context.Context) ([]model.ProductCategory, error)
	ListActive(ctx context.Context) ([]model.ProductCategory, error)
	ListChildren(ctx context.Context, parentID uint) ([]model.ProductCategory, error)
	GetByID(ctx context.Context, id uint) (*model.ProductCategory, error)
	Create(ctx context.Context, category *model.ProductCategory) error
	Update(ctx context.Context, category *model.ProductCategory) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
	ProductCount(ctx context.Context, id uint) (int64, error)
}

type productCategoryService struct {
	categoryRepo repository.ProductCategoryRepository
	productRepo  repository.ProductRepository
}

// NewProductCategoryService creates a new product category service.
func NewProductCategoryService(categoryRepo repository.ProductCategoryRepository, productRepo repository.ProductRepository) ProductCategoryService {
	return &productCategoryService{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *productCategoryService) List(ctx context.Context) ([]model.ProductCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *productCategoryService) ListActive(ctx context.Context) ([]model.ProductCategory, error) {
	return s.categoryRepo.ListActive(ctx)
}

func (s *productCategoryService) ListChildren(ctx context.Context, parentID uint) ([]model.ProductCategory, error) {
	return s.categoryRepo.ListChildren(ctx, parentID)
}

func (s *productCategoryService) GetByID(ctx context.Context, id uint) (*model.ProductCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (s *productCategoryService) Create(ctx context.Context, category *model.ProductCategory) error {
	taken, err := s.categoryRepo.NameExists(ctx, category.Name, 0)
	if err != nil {
		return fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return apperrors.ErrCategoryNameTaken
	}

	if category.ParentID != nil {
		if _, err := s.GetByID(ctx, *category.ParentID); err != nil {
			return err
		}
	}
	category.Active = true
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (s *productCategoryService) Update(ctx context.Context, category *model.ProductCategory) error {
	if _, err := s.GetByID(ctx, category.ID); err != nil {
		return err
	}

	taken, err := s.categoryRepo.NameExists(ctx, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return apperrors.ErrCategoryNameTaken
	}

	if category.ParentID != nil {
		if *category.ParentID == category.ID {
			return fmt.Errorf("%w: category cannot be its own parent", apperrors.ErrInvalidInput)
		}
		if _, err := s.GetByID(ctx, *category.ParentID); err != nil {
			return err
		}
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (s *productCategoryService) SetActive(ctx context.Context, id uint, active bool) error {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	category.Active = active
	return s.categoryRepo.Update(ctx, category)
}

// Delete refuses when the category still has products or
// subcategories attached.
func (s *productCategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	products, err := s.productRepo.CountByCategoryID(ctx, id)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if products > 0 {
		return apperrors.ErrCategoryInUse
	}

	children, err := s.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("count subcategories: %w", err)
	}
	if children > 0 {
		return apperrors.ErrCategoryInUse
	}

	return s.categoryRepo.Delete(ctx, id)
}

func (s *productCategoryService) ProductCount(ctx context.Context, id uint) (int64, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return s.productRepo.CountByCategoryID(ctx, id)
}
