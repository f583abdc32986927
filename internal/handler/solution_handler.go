package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"agriconnect/internal/filter"
	"agriconnect/internal/model"
	"agriconnect/internal/service"
)

const relatedSolutionLimit = 4

// SolutionHandler handles the public green-energy catalogue together
// with the provider directory.
type SolutionHandler struct {
	solutionService service.EnergySolutionService
}

// NewSolutionHandler creates a new solution handler.
func NewSolutionHandler(solutionService service.EnergySolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

// SolutionDetail pairs a solution with related listings from the same
// category.
type SolutionDetail struct {
	Solution *model.EnergySolution  `json:"solution"`
	Related  []model.EnergySolution `json:"related"`
}

func queryDecimal(c echo.Context, name string) *decimal.Decimal {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// List godoc
// @Summary Browse energy solutions with filter, sort, and pagination
// @Tags solutions
// @Produce json
// @Param category_id query int false "Category"
// @Param provider_id query int false "Provider"
// @Param min_price query string false "Lowest acceptable price range start"
// @Param max_price query string false "Highest acceptable price range end"
// @Param search query string false "Matches name, description, application areas"
// @Param application_area query string false "Application area contains"
// @Param available query bool false "Only available solutions"
// @Param sort query string false "name | price_asc | price_desc | category | provider | newest"
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size, default 12"
// @Success 200 {object} service.SolutionPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /solutions [get]
func (h *SolutionHandler) List(c echo.Context) error {
	q := service.SolutionQuery{
		Filter: filter.SolutionFilter{
			CategoryID:      queryUint(c, "category_id"),
			ProviderID:      queryUint(c, "provider_id"),
			MinPrice:        queryDecimal(c, "min_price"),
			MaxPrice:        queryDecimal(c, "max_price"),
			Search:          c.QueryParam("search"),
			ApplicationArea: c.QueryParam("application_area"),
			AvailableOnly:   c.QueryParam("available") == "true",
		},
		Sort: filter.ParseSortKey(c.QueryParam("sort")),
		Page: queryInt(c, "page", 1),
		Size: queryInt(c, "size", filter.DefaultPageSize),
	}

	page, err := h.solutionService.Search(c.Request().Context(), q)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Solution details with related listings
// @Tags solutions
// @Produce json
// @Param id path int true "Solution ID"
// @Success 200 {object} SolutionDetail
// @Failure 404 {object} errors.ErrorResponse
// @Router /solutions/{id} [get]
func (h *SolutionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	solution, err := h.solutionService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	related, err := h.solutionService.Related(c.Request().Context(), id, relatedSolutionLimit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, SolutionDetail{Solution: solution, Related: related})
}

// Featured godoc
// @Summary Newest available solutions for the landing page
// @Tags solutions
// @Produce json
// @Success 200 {array} model.EnergySolution
// @Failure 500 {object} errors.ErrorResponse
// @Router /solutions/featured [get]
func (h *SolutionHandler) Featured(c echo.Context) error {
	solutions, err := h.solutionService.Featured(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, solutions)
}

// ListCategories godoc
// @Summary Active solution categories
// @Tags solutions
// @Produce json
// @Success 200 {array} model.EnergySolutionCategory
// @Failure 500 {object} errors.ErrorResponse
// @Router /solution-categories [get]
func (h *SolutionHandler) ListCategories(c echo.Context) error {
	categories, err := h.solutionService.ListCategories(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// ListProviders godoc
// @Summary Active energy solution providers
// @Tags providers
// @Produce json
// @Success 200 {array} model.EnergySolutionProvider
// @Failure 500 {object} errors.ErrorResponse
// @Router /providers [get]
func (h *SolutionHandler) ListProviders(c echo.Context) error {
	providers, err := h.solutionService.ListProviders(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, providers)
}

// GetProvider godoc
// @Summary Provider profile with its solutions
// @Tags providers
// @Produce json
// @Param id path int true "Provider ID"
// @Success 200 {object} model.EnergySolutionProvider
// @Failure 404 {object} errors.ErrorResponse
// @Router /providers/{id} [get]
func (h *SolutionHandler) GetProvider(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	provider, err := h.solutionService.GetProvider(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, provider)
}
