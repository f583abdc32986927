package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agriconnect/internal/filter"
	"agriconnect/internal/service"
)

// ProductHandler handles the public product catalogue.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func queryUint(c echo.Context, name string) *uint {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func queryDate(c echo.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// List godoc
// @Summary Browse farm products
// @Tags products
// @Produce json
// @Param category_id query int false "Category"
// @Param farmer_id query int false "Farmer"
// @Param name query string false "Name contains, case-insensitive"
// @Param start query string false "Produced on or after (YYYY-MM-DD)"
// @Param end query string false "Produced on or before (YYYY-MM-DD)"
// @Param available query bool false "Only available products"
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	f := filter.ProductFilter{
		CategoryID:    queryUint(c, "category_id"),
		FarmerID:      queryUint(c, "farmer_id"),
		Name:          c.QueryParam("name"),
		Start:         queryDate(c, "start"),
		End:           queryDate(c, "end"),
		AvailableOnly: c.QueryParam("available") == "true",
	}

	products, err := h.productService.Search(c.Request().Context(), f)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Product details
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, product)
}
