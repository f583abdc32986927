package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agriconnect/internal/model"
	"agriconnect/internal/service"
)

// CategoryHandler handles the product category tree. Reads are public;
// mutations are staff-only and wired behind the employee route group.
type CategoryHandler struct {
	categoryService service.ProductCategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.ProductCategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create or update.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	ParentID    *uint  `json:"parent_id,omitempty"`
}

// List godoc
// @Summary Active product categories
// @Tags categories
// @Produce json
// @Success 200 {array} model.ProductCategory
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.ListActive(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Get godoc
// @Summary Category details with product count
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.categoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	count, err := h.categoryService.ProductCount(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"category": category, "product_count": count})
}

// Create godoc
// @Summary Create a product category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} model.ProductCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category := &model.ProductCategory{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := h.categoryService.Create(c.Request().Context(), category); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// Update godoc
// @Summary Update a product category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} model.ProductCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existing, err := h.categoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	existing.Name = req.Name
	existing.Description = req.Description
	existing.ParentID = req.ParentID

	if err := h.categoryService.Update(c.Request().Context(), existing); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, existing)
}

// Delete godoc
// @Summary Delete an empty product category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "category deleted"})
}
