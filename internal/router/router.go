package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"agriconnect/internal/auth"
	"agriconnect/internal/config"
	"agriconnect/internal/handler"
	"agriconnect/internal/logging"
	"agriconnect/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	farmerHandler *handler.FarmerHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	employeeHandler *handler.EmployeeHandler,
	solutionHandler *handler.SolutionHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(logging.Middleware())
	e.Use(metrics.Middleware())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)

	api.GET("/solutions", solutionHandler.List)
	api.GET("/solutions/featured", solutionHandler.Featured)
	api.GET("/solutions/:id", solutionHandler.Get)
	api.GET("/solution-categories", solutionHandler.ListCategories)
	api.GET("/providers", solutionHandler.ListProviders)
	api.GET("/providers/:id", solutionHandler.GetProvider)

	// Secured routes (require JWT authentication). Validation goes
	// through the same JWTService that issued the tokens, and the typed
	// claims land on the context under "user".
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.GET("/me", authHandler.Me)

	// Farmer routes
	farmer := secured.Group("/farmer", RequireRoles(auth.RoleFarmer))
	farmer.GET("/dashboard", farmerHandler.Dashboard)
	farmer.GET("/profile", farmerHandler.GetProfile)
	farmer.POST("/profile", farmerHandler.CreateProfile)
	farmer.PUT("/profile", farmerHandler.UpdateProfile)
	farmer.GET("/products", farmerHandler.ListProducts)
	farmer.POST("/products", farmerHandler.CreateProduct)
	farmer.PUT("/products/:id", farmerHandler.UpdateProduct)
	farmer.DELETE("/products/:id", farmerHandler.DeleteProduct)

	// Staff routes
	staff := secured.Group("/employee", RequireRoles(auth.RoleEmployee, auth.RoleAdministrator))
	staff.GET("/dashboard", employeeHandler.Dashboard)
	staff.GET("/farmers", employeeHandler.ListFarmers)
	staff.GET("/farmers/:id", employeeHandler.GetFarmer)
	staff.POST("/farmers", employeeHandler.RegisterFarmer)
	staff.POST("/farmers/:id/verify", employeeHandler.VerifyFarmer)
	staff.POST("/products/filter", employeeHandler.FilterProducts)
	staff.POST("/solutions", solutionHandler.CreateSolution)
	staff.PUT("/solutions/:id", solutionHandler.UpdateSolution)
	staff.DELETE("/solutions/:id", solutionHandler.DeleteSolution)
	staff.POST("/providers", solutionHandler.CreateProvider)
	staff.PUT("/providers/:id", solutionHandler.UpdateProvider)
	staff.POST("/solution-categories", solutionHandler.CreateSolutionCategory)

	// Staff directory management is reserved for administrators.
	admin := secured.Group("/employee/employees", RequireRoles(auth.RoleAdministrator))
	admin.GET("", employeeHandler.ListEmployees)
	admin.GET("/:id", employeeHandler.GetEmployee)
	admin.POST("", employeeHandler.RegisterEmployee)
	admin.PUT("/:id", employeeHandler.UpdateEmployee)
	admin.DELETE("/:id", employeeHandler.DeleteEmployee)

	// Category management is staff-only but keeps its public paths.
	categories := secured.Group("/categories", RequireRoles(auth.RoleEmployee, auth.RoleAdministrator))
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)
}

// RequireRoles allows only principals whose role is in the given set.
// A token carrying an unknown role fails closed.
func RequireRoles(roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			role, err := auth.ParseRole(claims.Role)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			if !role.Is(roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
