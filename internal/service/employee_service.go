package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"agriconnect/internal/cache"
	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/logging"
	"agriconnect/internal/model"
	"agriconnect/internal/repository"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 2 * time.Minute
)

// DashboardStats aggregates the figures shown on the staff dashboard.
type DashboardStats struct {
	TotalFarmers    int64 `json:"total_farmers"`
	VerifiedFarmers int64 `json:"verified_farmers"`
	PendingFarmers  int64 `json:"pending_farmers"`
	FarmersToday    int64 `json:"farmers_today"`
	TotalProducts   int64 `json:"total_products"`
	ProductsToday   int64 `json:"products_today"`
	TotalSolutions  int64 `json:"total_solutions"`
	TotalProviders  int64 `json:"total_providers"`
}

// EmployeeService manages staff profiles and staff-side operations
// over farmers.
type EmployeeService interface {
	List(ctx context.Context) ([]model.Employee, error)
	ListByDepartment(ctx context.Context, department string) ([]model.Employee, error)
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id uint) error
	// VerifyFarmer marks a farmer profile as checked by staff.
	VerifyFarmer(ctx context.Context, farmerID uint) error
	// Stats serves the dashboard aggregates, cached with a short TTL.
	Stats(ctx context.Context) (*DashboardStats, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	farmerRepo   repository.FarmerRepository
	productRepo  repository.ProductRepository
	solutionRepo repository.EnergySolutionRepository
	providerRepo repository.EnergySolutionProviderRepository
	cache        *cache.Client
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	farmerRepo repository.FarmerRepository,
	productRepo repository.ProductRepository,
	solutionRepo repository.EnergySolutionRepository,
	providerRepo repository.EnergySolutionProviderRepository,
	cache *cache.Client,
) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		farmerRepo:   farmerRepo,
		productRepo:  productRepo,
		solutionRepo: solutionRepo,
		providerRepo: providerRepo,
		cache:        cache,
	}
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *employeeService) ListByDepartment(ctx context.Context, department string) ([]model.Employee, error) {
	return s.employeeRepo.ListByDepartment(ctx, department)
}

func (s *employeeService) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) GetByUserID(ctx context.Context, userID uint) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find employee by user: %w", err)
	}
	return employee, nil
}

func (s *employeeService) Create(ctx context.Context, employee *model.Employee) error {
	_, err := s.employeeRepo.FindByUserID(ctx, employee.UserID)
	if err == nil {
		return apperrors.ErrProfileExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check profile: %w", err)
	}
	return s.employeeRepo.Create(ctx, employee)
}

func (s *employeeService) Update(ctx context.Context, employee *model.Employee) error {
	if _, err := s.GetByID(ctx, employee.ID); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, employee)
}

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func (s *employeeService) VerifyFarmer(ctx context.Context, farmerID uint) error {
	farmer, err := s.farmerRepo.FindByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find farmer: %w", err)
	}
	if farmer.Verified {
		return nil
	}
	farmer.Verified = true
	if err := s.farmerRepo.Update(ctx, farmer); err != nil {
		return fmt.Errorf("verify farmer: %w", err)
	}
	_ = s.cache.Delete(ctx, dashboardStatsKey)
	return nil
}

func (s *employeeService) Stats(ctx context.Context) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, dashboardStatsKey); data != nil {
		var stats DashboardStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
		logging.L().Warn("discarding malformed dashboard cache entry", zap.String("key", dashboardStatsKey))
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats DashboardStats
	var err error
	if stats.TotalFarmers, err = s.farmerRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count farmers: %w", err)
	}
	if stats.VerifiedFarmers, err = s.farmerRepo.CountVerified(ctx); err != nil {
		return nil, fmt.Errorf("count verified farmers: %w", err)
	}
	stats.PendingFarmers = stats.TotalFarmers - stats.VerifiedFarmers
	if stats.FarmersToday, err = s.farmerRepo.CountCreatedSince(ctx, midnight); err != nil {
		return nil, fmt.Errorf("count farmers today: %w", err)
	}
	if stats.TotalProducts, err = s.productRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if stats.ProductsToday, err = s.productRepo.CountCreatedSince(ctx, midnight); err != nil {
		return nil, fmt.Errorf("count products today: %w", err)
	}
	if stats.TotalSolutions, err = s.solutionRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count solutions: %w", err)
	}
	if stats.TotalProviders, err = s.providerRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count providers: %w", err)
	}

	if data, err := json.Marshal(&stats); err == nil {
		_ = s.cache.Set(ctx, dashboardStatsKey, data, dashboardStatsTTL)
	}
	return &stats, nil
}
