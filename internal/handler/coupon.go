package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dispatch/internal/domain"
	"dispatch/internal/service"
)

// CouponHandler handles HTTP requests for coupons.
type CouponHandler struct {
	couponService *service.CouponService
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// CreateCouponRequest is the HTTP request body for coupon creation.
type CreateCouponRequest struct {
	Code                  string              `json:"couponCode"`
	DiscountType          domain.DiscountType `json:"discountType"`
	DiscountAmount        float64             `json:"discountAmount"`
	MinimumPurchaseAmount float64             `json:"minimumPurchaseAmount"`
	EndDate               time.Time           `json:"endDate"`
	Status                string              `json:"status"`
}

// Create handles POST /coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	coupon, err := h.couponService.Create(c.Request.Context(), service.CreateCouponRequest{
		Code:                  req.Code,
		DiscountType:          req.DiscountType,
		DiscountAmount:        req.DiscountAmount,
		MinimumPurchaseAmount: req.MinimumPurchaseAmount,
		EndDate:               req.EndDate,
		Status:                req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Coupon created successfully", coupon)
}

// Get handles GET /coupons/:id
func (h *CouponHandler) Get(c *gin.Context) {
	coupon, err := h.couponService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", coupon)
}

// GetAll handles GET /coupons
func (h *CouponHandler) GetAll(c *gin.Context) {
	coupons, err := h.couponService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", coupons)
}

// UpdateCouponRequest is the HTTP request body for a coupon update.
type UpdateCouponRequest struct {
	Code                  *string              `json:"couponCode"`
	DiscountType          *domain.DiscountType `json:"discountType"`
	DiscountAmount        *float64             `json:"discountAmount"`
	MinimumPurchaseAmount *float64             `json:"minimumPurchaseAmount"`
	EndDate               *time.Time           `json:"endDate"`
	Status                *string              `json:"status"`
}

// Update handles PUT /coupons/:id
func (h *CouponHandler) Update(c *gin.Context) {
	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	coupon, err := h.couponService.Update(c.Request.Context(), c.Param("id"), service.UpdateCouponRequest{
		Code:                  req.Code,
		DiscountType:          req.DiscountType,
		DiscountAmount:        req.DiscountAmount,
		MinimumPurchaseAmount: req.MinimumPurchaseAmount,
		EndDate:               req.EndDate,
		Status:                req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Coupon updated successfully", coupon)
}

// Delete handles DELETE /coupons/:id
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.couponService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Coupon deleted successfully", nil)
}
