package main

import (
	"log"
	"net/http"

	_ "agriconnect/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agriconnect/internal/auth"
	"agriconnect/internal/cache"
	"agriconnect/internal/config"
	"agriconnect/internal/db"
	"agriconnect/internal/handler"
	"agriconnect/internal/logging"
	"agriconnect/internal/model"
	"agriconnect/internal/repository"
	"agriconnect/internal/router"
	"agriconnect/internal/service"
)

// @title AgriConnect API
// @version 1.0
// @description Marketplace connecting farmers, farm products, and green-energy solution providers.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.LogLevel, cfg.Environment); err != nil {
		log.Fatalf("logging init: %v", err)
	}
	defer func() { _ = logging.L().Sync() }()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logging.L().Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Farmer{},
		&model.Employee{},
		&model.ProductCategory{},
		&model.Product{},
		&model.EnergySolutionCategory{},
		&model.EnergySolutionProvider{},
		&model.EnergySolution{},
		&model.SeedVersion{},
	); err != nil {
		logging.L().Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	farmerRepo := repository.NewFarmerRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	productCategoryRepo := repository.NewProductCategoryRepository(gormDB)
	solutionRepo := repository.NewEnergySolutionRepository(gormDB)
	solutionCategoryRepo := repository.NewEnergySolutionCategoryRepository(gormDB)
	providerRepo := repository.NewEnergySolutionProviderRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, roleRepo, farmerRepo, jwtService, sessionStore, cfg.SessionTTL, cfg.RememberMeTTL)
	userService := service.NewUserService(userRepo)
	farmerService := service.NewFarmerService(farmerRepo)
	employeeService := service.NewEmployeeService(employeeRepo, farmerRepo, productRepo, solutionRepo, providerRepo, cacheClient)
	productService := service.NewProductService(productRepo, productCategoryRepo)
	categoryService := service.NewProductCategoryService(productCategoryRepo, productRepo)
	solutionService := service.NewEnergySolutionService(solutionRepo, solutionCategoryRepo, providerRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	farmerHandler := handler.NewFarmerHandler(farmerService, productService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, farmerService, productService, authService)
	solutionHandler := handler.NewSolutionHandler(solutionService)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		authHandler,
		farmerHandler,
		productHandler,
		categoryHandler,
		employeeHandler,
		solutionHandler,
	)

	addr := ":" + cfg.ServerPort
	logging.L().Info("server starting", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logging.L().Fatal("server stopped", zap.Error(err))
	}
}
