package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"agriconnect/internal/model"
)

// Staff-side catalogue management. Providers have no login of their
// own; employees maintain the provider directory and listings.

// SolutionRequest represents a solution create or update.
type SolutionRequest struct {
	ProviderID               uint             `json:"provider_id" validate:"required"`
	CategoryID               uint             `json:"category_id" validate:"required"`
	Name                     string           `json:"name" validate:"required,max=150"`
	Description              string           `json:"description,omitempty"`
	Specifications           string           `json:"specifications,omitempty"`
	InstallationRequirements string           `json:"installation_requirements,omitempty"`
	MaintenanceInfo          string           `json:"maintenance_info,omitempty"`
	CostEstimate             string           `json:"cost_estimate,omitempty"`
	PriceRangeMin            *decimal.Decimal `json:"price_range_min,omitempty"`
	PriceRangeMax            *decimal.Decimal `json:"price_range_max,omitempty"`
	Currency                 string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	ROIEstimate              string           `json:"roi_estimate,omitempty"`
	ApplicationAreas         string           `json:"application_areas,omitempty"`
	Available                bool             `json:"available"`
}

// ProviderRequest represents a provider create or update.
type ProviderRequest struct {
	CompanyName        string `json:"company_name" validate:"required,max=150"`
	ContactPerson      string `json:"contact_person,omitempty"`
	Email              string `json:"email" validate:"required,email"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	Website            string `json:"website,omitempty"`
	Address            string `json:"address,omitempty"`
	City               string `json:"city,omitempty"`
	Province           string `json:"province,omitempty"`
	PostalCode         string `json:"postal_code,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	YearEstablished    *int   `json:"year_established,omitempty"`
	Description        string `json:"description,omitempty"`
}

// SolutionCategoryRequest represents a solution category create.
type SolutionCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

func (r SolutionRequest) toModel() *model.EnergySolution {
	return &model.EnergySolution{
		CategoryID:               r.CategoryID,
		Name:                     r.Name,
		Description:              r.Description,
		Specifications:           r.Specifications,
		InstallationRequirements: r.InstallationRequirements,
		MaintenanceInfo:          r.MaintenanceInfo,
		CostEstimate:             r.CostEstimate,
		PriceRangeMin:            r.PriceRangeMin,
		PriceRangeMax:            r.PriceRangeMax,
		Currency:                 r.Currency,
		ROIEstimate:              r.ROIEstimate,
		ApplicationAreas:         r.ApplicationAreas,
		Available:                r.Available,
	}
}

func (r ProviderRequest) apply(p *model.EnergySolutionProvider) {
	p.CompanyName = r.CompanyName
	p.ContactPerson = r.ContactPerson
	p.Email = r.Email
	p.PhoneNumber = r.PhoneNumber
	p.Website = r.Website
	p.Address = r.Address
	p.City = r.City
	p.Province = r.Province
	p.PostalCode = r.PostalCode
	p.RegistrationNumber = r.RegistrationNumber
	p.YearEstablished = r.YearEstablished
	p.Description = r.Description
}

// CreateSolution godoc
// @Summary Add a solution to a provider's catalogue
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SolutionRequest true "Solution data"
// @Success 201 {object} model.EnergySolution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/solutions [post]
func (h *SolutionHandler) CreateSolution(c echo.Context) error {
	var req SolutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.solutionService.GetProvider(c.Request().Context(), req.ProviderID); err != nil {
		return domainError(err)
	}

	solution := req.toModel()
	if err := h.solutionService.Create(c.Request().Context(), req.ProviderID, solution); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, solution)
}

// UpdateSolution godoc
// @Summary Update a solution within its provider's catalogue
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Solution ID"
// @Param request body SolutionRequest true "Solution data"
// @Success 200 {object} model.EnergySolution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/solutions/{id} [put]
func (h *SolutionHandler) UpdateSolution(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SolutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.solutionService.Update(c.Request().Context(), req.ProviderID, id, req.toModel())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSolution godoc
// @Summary Remove a solution from the catalogue
// @Tags employee
// @Produce json
// @Security BearerAuth
// @Param id path int true "Solution ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/solutions/{id} [delete]
func (h *SolutionHandler) DeleteSolution(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	solution, err := h.solutionService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	if err := h.solutionService.Delete(c.Request().Context(), solution.ProviderID, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "solution deleted"})
}

// CreateProvider godoc
// @Summary Register an energy solution provider
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProviderRequest true "Provider data"
// @Success 201 {object} model.EnergySolutionProvider
// @Failure 400 {object} errors.ErrorResponse
// @Router /employee/providers [post]
func (h *SolutionHandler) CreateProvider(c echo.Context) error {
	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	provider := &model.EnergySolutionProvider{Active: true}
	req.apply(provider)
	if err := h.solutionService.CreateProvider(c.Request().Context(), provider); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, provider)
}

// UpdateProvider godoc
// @Summary Update an energy solution provider
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Provider ID"
// @Param request body ProviderRequest true "Provider data"
// @Success 200 {object} model.EnergySolutionProvider
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employee/providers/{id} [put]
func (h *SolutionHandler) UpdateProvider(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	provider, err := h.solutionService.GetProvider(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	req.apply(provider)
	if err := h.solutionService.UpdateProvider(c.Request().Context(), provider); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, provider)
}

// CreateSolutionCategory godoc
// @Summary Create a solution category
// @Tags employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SolutionCategoryRequest true "Category data"
// @Success 201 {object} model.EnergySolutionCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /employee/solution-categories [post]
func (h *SolutionHandler) CreateSolutionCategory(c echo.Context) error {
	var req SolutionCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category := &model.EnergySolutionCategory{Name: req.Name, Description: req.Description, Active: true}
	if err := h.solutionService.CreateCategory(c.Request().Context(), category); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, category)
}
