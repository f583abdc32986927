package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/filter"
	"agriconnect/internal/model"
	"agriconnect/internal/repository"
)

// ProductService manages farm product listings. Mutations take the
// acting farmer id; a product that does not exist and a product owned
// by someone else produce the same ErrNotFound so callers cannot
// probe other farmers' listing ids.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByFarmer(ctx context.Context, farmerID uint) ([]model.Product, error)
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	Search(ctx context.Context, f filter.ProductFilter) ([]model.Product, error)
	Create(ctx context.Context, farmerID uint, product *model.Product) error
	Update(ctx context.Context, farmerID, productID uint, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, farmerID, productID uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.ProductCategoryRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.ProductCategoryRepository) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) ListByFarmer(ctx context.Context, farmerID uint) ([]model.Product, error) {
	return s.productRepo.ListByFarmerID(ctx, farmerID)
}

func (s *productService) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// Search loads candidates narrowed by the indexed columns, then
// applies the remaining predicates in memory.
func (s *productService) Search(ctx context.Context, f filter.ProductFilter) ([]model.Product, error) {
	var (
		products []model.Product
		err      error
	)
	switch {
	case f.FarmerID != nil:
		products, err = s.productRepo.ListByFarmerID(ctx, *f.FarmerID)
	case f.CategoryID != nil:
		products, err = s.productRepo.ListByCategoryID(ctx, *f.CategoryID)
	default:
		products, err = s.productRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return filter.Products(products, f), nil
}

func (s *productService) Create(ctx context.Context, farmerID uint, product *model.Product) error {
	if _, err := s.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}

	product.FarmerID = farmerID
	if product.Currency == "" {
		product.Currency = "ZAR"
	}
	return s.productRepo.Create(ctx, product)
}

// Update replaces the caller-writable fields of an owned product. The
// owning farmer never changes on update.
func (s *productService) Update(ctx context.Context, farmerID, productID uint, product *model.Product) (*model.Product, error) {
	existing, err := s.ownedProduct(ctx, farmerID, productID)
	if err != nil {
		return nil, err
	}

	if product.CategoryID != existing.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("find category: %w", err)
		}
	}

	existing.CategoryID = product.CategoryID
	existing.Name = product.Name
	existing.Description = product.Description
	existing.ProductionDate = product.ProductionDate
	existing.Quantity = product.Quantity
	existing.Unit = product.Unit
	existing.Price = product.Price
	if product.Currency != "" {
		existing.Currency = product.Currency
	}
	existing.SustainabilityFeatures = product.SustainabilityFeatures
	existing.Organic = product.Organic
	existing.Available = product.Available
	now := time.Now()
	existing.UpdatedAt = &now

	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return existing, nil
}

func (s *productService) Delete(ctx context.Context, farmerID, productID uint) error {
	if _, err := s.ownedProduct(ctx, farmerID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

func (s *productService) ownedProduct(ctx context.Context, farmerID, productID uint) (*model.Product, error) {
	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.FarmerID != farmerID {
		return nil, apperrors.ErrNotFound
	}
	return product, nil
}
