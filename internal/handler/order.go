package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/domain"
	"dispatch/internal/service"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrderRequest is the HTTP request body for order creation.
type CreateOrderRequest struct {
	UserID          string             `json:"userID"`
	RiderID         string             `json:"riderId"`
	Items           []domain.OrderItem `json:"items"`
	TotalPrice      float64            `json:"totalPrice"`
	OrderTotal      float64            `json:"orderTotal"`
	CouponCode      string             `json:"couponCode"`
	ShippingAddress *domain.Address    `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	TrackingURL     string             `json:"trackingUrl"`
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), service.CreateOrderRequest{
		UserID:          req.UserID,
		RiderID:         req.RiderID,
		Items:           req.Items,
		TotalPrice:      req.TotalPrice,
		OrderTotal:      req.OrderTotal,
		CouponID:        req.CouponCode,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TrackingURL:     req.TrackingURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Order created successfully", order)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	detail, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", detail)
}

// GetAll handles GET /orders
func (h *OrderHandler) GetAll(c *gin.Context) {
	details, err := h.orderService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", details)
}

// GetByUser handles GET /orders/orderByUserId/:userId
func (h *OrderHandler) GetByUser(c *gin.Context) {
	details, err := h.orderService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", details)
}

// OrderStatusRequest is the HTTP request body for an order status overwrite.
type OrderStatusRequest struct {
	Status      domain.OrderStatus `json:"orderStatus"`
	TrackingURL string             `json:"trackingUrl"`
}

// UpdateStatus handles PUT /orders/:id
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.TrackingURL)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Order updated successfully", order)
}

// Delete handles DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Order deleted successfully", nil)
}

// ReviewRequest is the HTTP request body for attaching a review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AttachReview handles POST /orders/:id/review
func (h *OrderHandler) AttachReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	review, err := h.orderService.AttachReview(c.Request.Context(), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Review added successfully", review)
}
