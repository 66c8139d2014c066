package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/domain"
	"dispatch/internal/service"
)

// RiderHandler handles HTTP requests for riders, including the dispatch
// routes that live under the rider group.
type RiderHandler struct {
	riderService    *service.RiderService
	dispatchService *service.DispatchService
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(riderService *service.RiderService, dispatchService *service.DispatchService) *RiderHandler {
	return &RiderHandler{
		riderService:    riderService,
		dispatchService: dispatchService,
	}
}

// RegisterRiderRequest is the HTTP request body for rider registration.
type RegisterRiderRequest struct {
	Name           string           `json:"name"`
	Phone          string           `json:"phone_number"`
	VehicleDetails string           `json:"vehicle_details"`
	Email          string           `json:"email"`
	Password       string           `json:"password"`
	Image          string           `json:"image"`
	DateOfBirth    string           `json:"dateOfBirth"`
	Gender         string           `json:"gender"`
	Addresses      []domain.Address `json:"addresses"`
}

// Register handles POST /rider
func (h *RiderHandler) Register(c *gin.Context) {
	var req RegisterRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.riderService.Register(c.Request.Context(), service.RegisterRiderRequest{
		Name:           req.Name,
		Phone:          req.Phone,
		VehicleDetails: req.VehicleDetails,
		Email:          req.Email,
		Password:       req.Password,
		Image:          req.Image,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Addresses:      req.Addresses,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Rider registered successfully", result)
}

// Login handles POST /rider/login
func (h *RiderHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.riderService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Login successful", result)
}

// Get handles GET /rider/:id
func (h *RiderHandler) Get(c *gin.Context) {
	detail, err := h.riderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", detail)
}

// GetAll handles GET /rider
func (h *RiderHandler) GetAll(c *gin.Context) {
	riders, err := h.riderService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", riders)
}

// Orders handles GET /rider/:id/orders
func (h *RiderHandler) Orders(c *gin.Context) {
	orders, err := h.riderService.Orders(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", orders)
}

// UpdateRiderRequest is the HTTP request body for a rider update.
// Pointer fields distinguish "absent" from "set to zero".
type UpdateRiderRequest struct {
	Name           *string             `json:"name"`
	Phone          *string             `json:"phone_number"`
	Email          *string             `json:"email"`
	VehicleDetails *string             `json:"vehicle_details"`
	Image          *string             `json:"image"`
	DateOfBirth    *string             `json:"dateOfBirth"`
	Gender         *string             `json:"gender"`
	Addresses      *[]domain.Address   `json:"addresses"`
	Password       *string             `json:"password"`
	CurrentStatus  *domain.RiderStatus `json:"current_status"`
}

// Update handles PUT /rider/:id
func (h *RiderHandler) Update(c *gin.Context) {
	var req UpdateRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	rider, err := h.riderService.Update(c.Request.Context(), c.Param("id"), service.UpdateRiderRequest{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		VehicleDetails: req.VehicleDetails,
		Image:          req.Image,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Addresses:      req.Addresses,
		Password:       req.Password,
		CurrentStatus:  req.CurrentStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Rider updated successfully", rider)
}

// UpdateStatusRequest is the HTTP request body for a rider status change.
type UpdateStatusRequest struct {
	Status domain.RiderStatus `json:"current_status"`
}

// UpdateStatus handles PUT /rider/:id/status
func (h *RiderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	rider, err := h.riderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Rider status updated successfully", rider)
}

// Delete handles DELETE /rider/:id
func (h *RiderHandler) Delete(c *gin.Context) {
	if err := h.riderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Rider deleted successfully", nil)
}

// AssignOrderRequest is the HTTP request body for order assignment.
type AssignOrderRequest struct {
	RiderID string `json:"riderId"`
}

// AssignOrder handles PUT /rider/assignOrder/:orderId
func (h *RiderHandler) AssignOrder(c *gin.Context) {
	var req AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	order, err := h.dispatchService.AssignOrder(c.Request.Context(), c.Param("orderId"), req.RiderID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Order assigned successfully", order)
}

// UpdateOrderStatusRequest is the HTTP request body for a rider-driven order
// status change.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"orderStatus"`
}

// UpdateOrder handles PUT /rider/:id/updateOrder/:orderId
func (h *RiderHandler) UpdateOrder(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	order, err := h.dispatchService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), c.Param("orderId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Order status updated successfully", order)
}
