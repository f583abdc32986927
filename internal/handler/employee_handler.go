package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agriconnect/internal/auth"
	"agriconnect/internal/filter"
	"agriconnect/internal/model"
	"agriconnect/internal/service"
)

// EmployeeHandler handles the staff-side endpoints: the dashboard,
// farmer administration, and product searches across all farmers.
type EmployeeHandler struct {
	employeeService service.EmployeeService
	farmerService   service.FarmerService
	productService  service.ProductService
	authService     service.AuthService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(
	employeeService service.EmployeeService,
	farmerService service.FarmerService,
	productService service.ProductService,
	authService service.AuthService,
) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		farmerService:   farmerService,
		productService:  productService,
		authService:     authService,
	}
}

// RegisterFarmerRequest registers an account and profile on behalf of
// a farmer who walked into the office.
type RegisterFarmerRequest struct {
	Username    string               `json:"username" validate:"required,min=3,max=100"`
	Email       string               `json:"email" validate:"required,email"`
	Password    string               `json:"password" validate:"required,min=8"`
	FirstName   string               `json:"first_name,omitempty"`
	LastName    string               `json:"last_name,omitempty"`
	PhoneNumber string               `json:"phone_number,omitempty"`
	Profile     FarmerProfileRequest `json:"profile" validate:"required"`
}

// EmployeeProfileRequest represents the staff profile fields.
type EmployeeProfileRequest struct {
	EmployeeNumber string     `json:"employee_number,omitempty"`
	Department     string     `json:"department,omitempty"`
	Position       string     `json:"position,omitempty"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	SupervisorID   *uint      `json:"supervisor_id,omitempty"`
	OfficeLocation string     `json:"office_location,omitempty"`
}

func (r EmployeeProfileRequest) toModel() *model.Employee {
	return &model.Employee{
		EmployeeNumber: r.EmployeeNumber,
		Department:     r.Department,
		Position:       r.Position,
		HireDate:       r.HireDate,
		SupervisorID:   r.SupervisorID,
		OfficeLocation: r.OfficeLocation,
		Active:         true,
	}
}

// RegisterEmployeeRequest creates a staff account and profile.
type RegisterEmployeeRequest struct {
	Username    string                 `json:"username" validate:"required,min=3,max=100"`
	Email       string                 `json:"email" validate:"required,email"`
	Password    string                 `json:"password" validate:"required,min=8"`
	FirstName   string                 `json:"first_name,omitempty"`
	LastName    string                 `json:"last_name,omitempty"`
	PhoneNumber string                 `json:"phone_number,omitempty"`
	Profile     EmployeeProfileRequest `json:"profile"`
}

// ProductFilterRequest represents a staff product search.
type ProductFilterRequest struct {
	CategoryID    *uint      `json:"category_id,omitempty"`
	FarmerID      *uint      `json:"farmer_id,omitempty"`
	Name          string     `json:"name,omitempty"`
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
	AvailableOnly bool       `json:"available_only"`
}

// Dashboard godoc
// @Summary Staff dashboard aggregates
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /employee/dashboard [get]
func (h *EmployeeHandler) Dashboard(c echo.Context) error {
	stats, err := h.employeeService.Stats(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ListFarmers godoc
// @Summary All farmer profiles
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Farmer
// @Failure 403 {object} errors.ErrorResponse
// @Router /employee/farmers [get]
func (h *EmployeeHandler) ListFarmers(c echo.Context) error {
	farmers, err := h.farmerService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, farmers)
}

// GetFarmer godoc
// @Summary Farmer profile with products
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farmer ID"
// @Success 200 {object} FarmerDashboard
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/farmers/{id} [get]
func (h *EmployeeHandler) GetFarmer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	farmer, err := h.farmerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	products, err := h.productService.ListByFarmer(c.Request().Context(), farmer.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, FarmerDashboard{Farmer: farmer, Products: products})
}

// RegisterFarmer godoc
// @Summary Register a farmer account and profile on their behalf
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterFarmerRequest true "Account and profile data"
// @Success 201 {object} model.Farmer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /employee/farmers [post]
func (h *EmployeeHandler) RegisterFarmer(c echo.Context) error {
	var req RegisterFarmerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	created, err := h.authService.Register(c.Request().Context(), user, req.Password, auth.RoleFarmer.String())
	if err != nil {
		return domainError(err)
	}

	farmer := req.Profile.toModel()
	farmer.UserID = created.ID
	if err := h.farmerService.CreateProfile(c.Request().Context(), farmer); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, farmer)
}

// VerifyFarmer godoc
// @Summary Mark a farmer profile as verified
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farmer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/farmers/{id}/verify [post]
func (h *EmployeeHandler) VerifyFarmer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.employeeService.VerifyFarmer(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "farmer verified"})
}

// ListEmployees godoc
// @Summary Staff profiles, optionally narrowed to a department
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department name"
// @Success 200 {array} model.Employee
// @Failure 403 {object} errors.ErrorResponse
// @Router /employee/employees [get]
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()
	if department := c.QueryParam("department"); department != "" {
		employees, err := h.employeeService.ListByDepartment(ctx, department)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, employees)
	}
	employees, err := h.employeeService.List(ctx)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, employees)
}

// GetEmployee godoc
// @Summary Single staff profile
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	employee, err := h.employeeService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, employee)
}

// RegisterEmployee godoc
// @Summary Create a staff account and profile
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterEmployeeRequest true "Account and profile data"
// @Success 201 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /employee/employees [post]
func (h *EmployeeHandler) RegisterEmployee(c echo.Context) error {
	var req RegisterEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	created, err := h.authService.Register(c.Request().Context(), user, req.Password, auth.RoleEmployee.String())
	if err != nil {
		return domainError(err)
	}

	employee := req.Profile.toModel()
	employee.UserID = created.ID
	if err := h.employeeService.Create(c.Request().Context(), employee); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee godoc
// @Summary Update a staff profile
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param request body EmployeeProfileRequest true "Profile data"
// @Success 200 {object} model.Employee
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req EmployeeProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	employee, err := h.employeeService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	employee.EmployeeNumber = req.EmployeeNumber
	employee.Department = req.Department
	employee.Position = req.Position
	employee.HireDate = req.HireDate
	employee.SupervisorID = req.SupervisorID
	employee.OfficeLocation = req.OfficeLocation
	if err := h.employeeService.Update(c.Request().Context(), employee); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, employee)
}

// DeleteEmployee godoc
// @Summary Remove a staff profile
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.employeeService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "employee removed"})
}

// FilterProducts godoc
// @Summary Search products across all farmers
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductFilterRequest true "Filter"
// @Success 200 {array} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /employee/products/filter [post]
func (h *EmployeeHandler) FilterProducts(c echo.Context) error {
	var req ProductFilterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	products, err := h.productService.Search(c.Request().Context(), filter.ProductFilter{
		CategoryID:    req.CategoryID,
		FarmerID:      req.FarmerID,
		Name:          req.Name,
		Start:         req.Start,
		End:           req.End,
		AvailableOnly: req.AvailableOnly,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, products)
}
