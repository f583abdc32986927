package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/filter"
	"agriconnect/internal/model"
	"agriconnect/internal/repository"
)

const featuredSolutionCount = 6

// SolutionQuery bundles the filter, sort, and pagination parameters
// for the public catalogue listing.
type SolutionQuery struct {
	Filter filter.SolutionFilter
	Sort   filter.SortKey
	Page   int
	Size   int
}

// SolutionPage is one page of the filtered, sorted catalogue.
type SolutionPage struct {
	Solutions  []model.EnergySolution `json:"solutions"`
	Page       int                    `json:"page"`
	Size       int                    `json:"size"`
	TotalItems int                    `json:"total_items"`
	TotalPages int                    `json:"total_pages"`
}

// EnergySolutionService manages the green-energy catalogue: solutions,
// their categories, and the providers listing them. Solution mutations
// take the acting provider id; a missing solution and one owned by
// another provider both yield ErrNotFound.
type EnergySolutionService interface {
	Search(ctx context.Context, q SolutionQuery) (*SolutionPage, error)
	GetByID(ctx context.Context, id uint) (*model.EnergySolution, error)
	// Related returns other available solutions in the same category.
	Related(ctx context.Context, id uint, limit int) ([]model.EnergySolution, error)
	Featured(ctx context.Context) ([]model.EnergySolution, error)
	ListByProvider(ctx context.Context, providerID uint) ([]model.EnergySolution, error)
	Create(ctx context.Context, providerID uint, solution *model.EnergySolution) error
	Update(ctx context.Context, providerID, solutionID uint, solution *model.EnergySolution) (*model.EnergySolution, error)
	Delete(ctx context.Context, providerID, solutionID uint) error

	ListCategories(ctx context.Context) ([]model.EnergySolutionCategory, error)
	CreateCategory(ctx context.Context, category *model.EnergySolutionCategory) error

	ListProviders(ctx context.Context) ([]model.EnergySolutionProvider, error)
	GetProvider(ctx context.Context, id uint) (*model.EnergySolutionProvider, error)
	CreateProvider(ctx context.Context, provider *model.EnergySolutionProvider) error
	UpdateProvider(ctx context.Context, provider *model.EnergySolutionProvider) error
}

type energySolutionService struct {
	solutionRepo repository.EnergySolutionRepository
	categoryRepo repository.EnergySolutionCategoryRepository
	providerRepo repository.EnergySolutionProviderRepository
}

// NewEnergySolutionService creates a new energy solution service.
func NewEnergySolutionService(
	solutionRepo repository.EnergySolutionRepository,
	categoryRepo repository.EnergySolutionCategoryRepository,
	providerRepo repository.EnergySolutionProviderRepository,
) EnergySolutionService {
	return &energySolutionService{
		solutionRepo: solutionRepo,
		categoryRepo: categoryRepo,
		providerRepo: providerRepo,
	}
}

// Search narrows candidates by the indexed columns, then applies the
// remaining predicates, the sort order, and pagination in memory.
func (s *energySolutionService) Search(ctx context.Context, q SolutionQuery) (*SolutionPage, error) {
	var (
		solutions []model.EnergySolution
		err       error
	)
	switch {
	case q.Filter.ProviderID != nil:
		solutions, err = s.solutionRepo.ListByProviderID(ctx, *q.Filter.ProviderID)
	case q.Filter.CategoryID != nil:
		solutions, err = s.solutionRepo.ListByCategoryID(ctx, *q.Filter.CategoryID)
	default:
		solutions, err = s.solutionRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}

	matched := filter.SortSolutions(filter.Solutions(solutions, q.Filter), q.Sort)

	size := q.Size
	if size <= 0 {
		size = filter.DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	items := filter.Page(matched, page, size)
	totalPages := (len(matched) + size - 1) / size

	return &SolutionPage{
		Solutions:  items,
		Page:       page,
		Size:       size,
		TotalItems: len(matched),
		TotalPages: totalPages,
	}, nil
}

func (s *energySolutionService) GetByID(ctx context.Context, id uint) (*model.EnergySolution, error) {
	solution, err := s.solutionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find solution: %w", err)
	}
	return solution, nil
}

func (s *energySolutionService) Related(ctx context.Context, id uint, limit int) ([]model.EnergySolution, error) {
	solution, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, err := s.solutionRepo.ListByCategoryID(ctx, solution.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("list related: %w", err)
	}

	related := make([]model.EnergySolution, 0, limit)
	for _, c := range candidates {
		if c.ID == solution.ID || !c.Available {
			continue
		}
		related = append(related, c)
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related, nil
}

func (s *energySolutionService) Featured(ctx context.Context) ([]model.EnergySolution, error) {
	return s.solutionRepo.ListAvailable(ctx, featuredSolutionCount)
}

func (s *energySolutionService) ListByProvider(ctx context.Context, providerID uint) ([]model.EnergySolution, error) {
	return s.solutionRepo.ListByProviderID(ctx, providerID)
}

func (s *energySolutionService) Create(ctx context.Context, providerID uint, solution *model.EnergySolution) error {
	if _, err := s.categoryRepo.FindByID(ctx, solution.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find solution category: %w", err)
	}

	solution.ProviderID = providerID
	if solution.Currency == "" {
		solution.Currency = "ZAR"
	}
	return s.solutionRepo.Create(ctx, solution)
}

func (s *energySolutionService) Update(ctx context.Context, providerID, solutionID uint, solution *model.EnergySolution) (*model.EnergySolution, error) {
	existing, err := s.ownedSolution(ctx, providerID, solutionID)
	if err != nil {
		return nil, err
	}

	if solution.CategoryID != existing.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, solution.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("find solution category: %w", err)
		}
	}

	existing.CategoryID = solution.CategoryID
	existing.Name = solution.Name
	existing.Description = solution.Description
	existing.Specifications = solution.Specifications
	existing.InstallationRequirements = solution.InstallationRequirements
	existing.MaintenanceInfo = solution.MaintenanceInfo
	existing.CostEstimate = solution.CostEstimate
	existing.PriceRangeMin = solution.PriceRangeMin
	existing.PriceRangeMax = solution.PriceRangeMax
	if solution.Currency != "" {
		existing.Currency = solution.Currency
	}
	existing.ROIEstimate = solution.ROIEstimate
	existing.ApplicationAreas = solution.ApplicationAreas
	existing.Available = solution.Available

	if err := s.solutionRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update solution: %w", err)
	}
	return existing, nil
}

func (s *energySolutionService) Delete(ctx context.Context, providerID, solutionID uint) error {
	if _, err := s.ownedSolution(ctx, providerID, solutionID); err != nil {
		return err
	}
	return s.solutionRepo.Delete(ctx, solutionID)
}

func (s *energySolutionService) ownedSolution(ctx context.Context, providerID, solutionID uint) (*model.EnergySolution, error) {
	solution, err := s.GetByID(ctx, solutionID)
	if err != nil {
		return nil, err
	}
	if solution.ProviderID != providerID {
		return nil, apperrors.ErrNotFound
	}
	return solution, nil
}

func (s *energySolutionService) ListCategories(ctx context.Context) ([]model.EnergySolutionCategory, error) {
	return s.categoryRepo.ListActive(ctx)
}

func (s *energySolutionService) CreateCategory(ctx context.Context, category *model.EnergySolutionCategory) error {
	taken, err := s.categoryRepo.NameExists(ctx, category.Name, 0)
	if err != nil {
		return fmt.Errorf("check solution category name: %w", err)
	}
	if taken {
		return apperrors.ErrCategoryNameTaken
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (s *energySolutionService) ListProviders(ctx context.Context) ([]model.EnergySolutionProvider, error) {
	return s.providerRepo.ListActive(ctx)
}

func (s *energySolutionService) GetProvider(ctx context.Context, id uint) (*model.EnergySolutionProvider, error) {
	provider, err := s.providerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find provider: %w", err)
	}
	return provider, nil
}

func (s *energySolutionService) CreateProvider(ctx context.Context, provider *model.EnergySolutionProvider) error {
	return s.providerRepo.Create(ctx, provider)
}

func (s *energySolutionService) UpdateProvider(ctx context.Context, provider *model.EnergySolutionProvider) error {
	if _, err := s.GetProvider(ctx, provider.ID); err != nil {
		return err
	}
	return s.providerRepo.Update(ctx, provider)
}
