package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/service"
)

// WarehouseHandler handles HTTP requests for warehouses.
type WarehouseHandler struct {
	warehouseService *service.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler.
func NewWarehouseHandler(warehouseService *service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// CreateWarehouseRequest is the HTTP request body for warehouse creation.
type CreateWarehouseRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Create handles POST /my/warehouse
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	warehouse, err := h.warehouseService.Create(c.Request.Context(), service.CreateWarehouseRequest{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Warehouse created successfully", warehouse)
}

// Get handles GET /my/warehouse/:id
func (h *WarehouseHandler) Get(c *gin.Context) {
	warehouse, err := h.warehouseService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", warehouse)
}

// GetAll handles GET /my/warehouse
func (h *WarehouseHandler) GetAll(c *gin.Context) {
	warehouses, err := h.warehouseService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", warehouses)
}

// UpdateWarehouseRequest is the HTTP request body for a warehouse update.
type UpdateWarehouseRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Update handles PUT /my/warehouse/:id
func (h *WarehouseHandler) Update(c *gin.Context) {
	var req UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	warehouse, err := h.warehouseService.Update(c.Request.Context(), c.Param("id"), service.UpdateWarehouseRequest{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Warehouse updated successfully", warehouse)
}

// Delete handles DELETE /my/warehouse/:id
func (h *WarehouseHandler) Delete(c *gin.Context) {
	if err := h.warehouseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Warehouse deleted successfully", nil)
}
