package handler

import (
	catalogapp "github.com/carshowroom/backend/internal/application/catalog"
	"github.com/carshowroom/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles catalog API endpoints. Browsing is public;
// mutations sit behind the employee middleware in the router.
type CatalogHandler struct {
	BaseHandler
	carService *catalogapp.CarService
	catalogCfg config.CatalogConfig
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(carService *catalogapp.CarService, catalogCfg config.CatalogConfig) *CatalogHandler {
	return &CatalogHandler{
		carService: carService,
		catalogCfg: catalogCfg,
	}
}

// List returns the catalog page by page
func (h *CatalogHandler) List(c *gin.Context) {
	var filter catalogapp.CarListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	cars, total, err := h.carService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, cars, total, page, pageSize)
}

// Featured returns the landing page car selection
func (h *CatalogHandler) Featured(c *gin.Context) {
	cars, err := h.carService.Featured(c.Request.Context(), h.catalogCfg.FeaturedLimit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cars)
}

// Get returns a car by ID
func (h *CatalogHandler) Get(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid car ID")
		return
	}

	car, err := h.carService.GetByID(c.Request.Context(), carID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// GetBySlug returns a car by its catalog slug
func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	car, err := h.carService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// Create adds a car to the catalog
func (h *CatalogHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	car, err := h.carService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, car)
}

// Update updates a car's descriptive fields
func (h *CatalogHandler) Update(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid car ID")
		return
	}

	var req catalogapp.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	car, err := h.carService.Update(c.Request.Context(), carID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// Delete removes a car from the catalog
func (h *CatalogHandler) Delete(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid car ID")
		return
	}

	if err := h.carService.Delete(c.Request.Context(), carID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListConfigurations returns a car's option packages
func (h *CatalogHandler) ListConfigurations(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid car ID")
		return
	}

	configs, err := h.carService.ListConfigurations(c.Request.Context(), carID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, configs)
}

// AddConfiguration adds an option package to a car
func (h *CatalogHandler) AddConfiguration(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid car ID")
		return
	}

	var req catalogapp.CreateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cfg, err := h.carService.AddConfiguration(c.Request.Context(), carID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cfg)
}

// DeleteConfiguration removes an option package
func (h *CatalogHandler) DeleteConfiguration(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("configId"))
	if err != nil {
		h.BadRequest(c, "Invalid configuration ID")
		return
	}

	if err := h.carService.DeleteConfiguration(c.Request.Context(), configID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
