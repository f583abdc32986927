package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"agriconnect/internal/model"
	"agriconnect/internal/service"
)

// FarmerHandler handles the farmer-facing endpoints: the profile and
// the farmer's own product listings.
type FarmerHandler struct {
	farmerService  service.FarmerService
	productService service.ProductService
}

// NewFarmerHandler creates a new farmer handler.
func NewFarmerHandler(farmerService service.FarmerService, productService service.ProductService) *FarmerHandler {
	return &FarmerHandler{farmerService: farmerService, productService: productService}
}

// FarmerProfileRequest represents a farmer profile create or update.
type FarmerProfileRequest struct {
	FarmName                string           `json:"farm_name" validate:"required,max=150"`
	RegistrationNumber      string           `json:"registration_number,omitempty"`
	EstablishedDate         *time.Time       `json:"established_date,omitempty"`
	Address                 string           `json:"address,omitempty"`
	City                    string           `json:"city,omitempty"`
	Province                string           `json:"province,omitempty"`
	PostalCode              string           `json:"postal_code,omitempty"`
	FarmSize                *decimal.Decimal `json:"farm_size,omitempty"`
	FarmSizeUnit            string           `json:"farm_size_unit,omitempty"`
	FarmingType             string           `json:"farming_type,omitempty"`
	MainCrops               string           `json:"main_crops,omitempty"`
	MainLivestock           string           `json:"main_livestock,omitempty"`
	SustainabilityPractices string           `json:"sustainability_practices,omitempty"`
	ProfileDescription      string           `json:"profile_description,omitempty"`
	EnergyNeeds             string           `json:"energy_needs,omitempty"`
}

// ProductRequest represents a product create or update.
type ProductRequest struct {
	CategoryID             uint             `json:"category_id" validate:"required"`
	Name                   string           `json:"name" validate:"required,max=150"`
	Description            string           `json:"description,omitempty"`
	ProductionDate         time.Time        `json:"production_date" validate:"required"`
	Quantity               *decimal.Decimal `json:"quantity,omitempty"`
	Unit                   string           `json:"unit,omitempty"`
	Price                  *decimal.Decimal `json:"price,omitempty"`
	Currency               string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	SustainabilityFeatures string           `json:"sustainability_features,omitempty"`
	Organic                bool             `json:"organic"`
	Available              bool             `json:"available"`
}

// FarmerDashboard bundles the data shown on the farmer landing page.
type FarmerDashboard struct {
	Farmer   *model.Farmer   `json:"farmer"`
	Products []model.Product `json:"products"`
}

func (r FarmerProfileRequest) toModel() *model.Farmer {
	return &model.Farmer{
		FarmName:                r.FarmName,
		RegistrationNumber:      r.RegistrationNumber,
		EstablishedDate:         r.EstablishedDate,
		Address:                 r.Address,
		City:                    r.City,
		Province:                r.Province,
		PostalCode:              r.PostalCode,
		FarmSize:                r.FarmSize,
		FarmSizeUnit:            r.FarmSizeUnit,
		FarmingType:             r.FarmingType,
		MainCrops:               r.MainCrops,
		MainLivestock:           r.MainLivestock,
		SustainabilityPractices: r.SustainabilityPractices,
		ProfileDescription:      r.ProfileDescription,
		EnergyNeeds:             r.EnergyNeeds,
	}
}

func (r ProductRequest) toModel() *model.Product {
	return &model.Product{
		CategoryID:             r.CategoryID,
		Name:                   r.Name,
		Description:            r.Description,
		ProductionDate:         r.ProductionDate,
		Quantity:               r.Quantity,
		Unit:                   r.Unit,
		Price:                  r.Price,
		Currency:               r.Currency,
		SustainabilityFeatures: r.SustainabilityFeatures,
		Organic:                r.Organic,
		Available:              r.Available,
	}
}

// ownProfile resolves the profile of the authenticated farmer.
func (h *FarmerHandler) ownProfile(c echo.Context) (*model.Farmer, error) {
	claims, err := principal(c)
	if err != nil {
		return nil, err
	}
	farmer, err := h.farmerService.GetByUserID(c.Request().Context(), claims.UserID)
	if err != nil {
		return nil, domainError(err)
	}
	return farmer, nil
}

// Dashboard godoc
// @Summary Farmer dashboard with profile and own products
// @Tags farmer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FarmerDashboard
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /farmer/dashboard [get]
func (h *FarmerHandler) Dashboard(c echo.Context) error {
	farmer, err := h.ownProfile(c)
	if err != nil {
		return err
	}
	products, err := h.productService.ListByFarmer(c.Request().Context(), farmer.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, FarmerDashboard{Farmer: farmer, Products: products})
}

// GetProfile godoc
// @Summary Own farmer profile
// @Tags farmer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Farmer
// @Failure 404 {object} errors.ErrorResponse
// @Router /farmer/profile [get]
func (h *FarmerHandler) GetProfile(c echo.Context) error {
	farmer, err := h.ownProfile(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farmer)
}

// CreateProfile godoc
// @Summary Create the farmer profile
// @Tags farmer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FarmerProfileRequest true "Profile data"
// @Success 201 {object} model.Farmer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /farmer/profile [post]
func (h *FarmerHandler) CreateProfile(c echo.Context) error {
	claims, err := principal(c)
	if err != nil {
		return err
	}

	var req FarmerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farmer := req.toModel()
	farmer.UserID = claims.UserID
	if err := h.farmerService.CreateProfile(c.Request().Context(), farmer); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, farmer)
}

// UpdateProfile godoc
// @Summary Update the farmer profile
// @Tags farmer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FarmerProfileRequest true "Profile data"
// @Success 200 {object} model.Farmer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /farmer/profile [put]
func (h *FarmerHandler) UpdateProfile(c echo.Context) error {
	claims, err := principal(c)
	if err != nil {
		return err
	}

	var req FarmerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.farmerService.UpdateProfile(c.Request().Context(), claims.UserID, req.toModel()); err != nil {
		return domainError(err)
	}
	farmer, err := h.farmerService.GetByUserID(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, farmer)
}

// ListProducts godoc
// @Summary Own product listings
// @Tags farmer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /farmer/products [get]
func (h *FarmerHandler) ListProducts(c echo.Context) error {
	farmer, err := h.ownProfile(c)
	if err != nil {
		return err
	}
	products, err := h.productService.ListByFarmer(c.Request().Context(), farmer.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary List a new product
// @Tags farmer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /farmer/products [post]
func (h *FarmerHandler) CreateProduct(c echo.Context) error {
	farmer, err := h.ownProfile(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product := req.toModel()
	if err := h.productService.Create(c.Request().Context(), farmer.ID, product); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update an owned product
// @Tags farmer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /farmer/products/{id} [put]
func (h *FarmerHandler) UpdateProduct(c echo.Context) error {
	farmer, err := h.ownProfile(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.productService.Update(c.Request().Context(), farmer.ID, productID, req.toModel())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct godoc
// @Summary Delete an owned product
// @Tags farmer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /farmer/products/{id} [delete]
func (h *FarmerHandler) DeleteProduct(c echo.Context) error {
	farmer, err := h.ownProfile(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), farmer.ID, productID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}
