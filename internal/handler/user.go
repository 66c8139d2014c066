package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/domain"
	"dispatch/internal/service"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRequest is the HTTP request body for user registration.
type RegisterUserRequest struct {
	FullName    string           `json:"fullName"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Password    string           `json:"password"`
	DateOfBirth string           `json:"dateOfBirth"`
	Gender      string           `json:"gender"`
	Image       string           `json:"image"`
	Addresses   []domain.Address `json:"addresses"`
}

// LoginRequest is the HTTP request body for user and rider login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.userService.Register(c.Request.Context(), service.RegisterUserRequest{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Image:       req.Image,
		Addresses:   req.Addresses,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "User registered successfully", result)
}

// Login handles POST /user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Login successful", result)
}

// Get handles GET /user/:id
func (h *UserHandler) Get(c *gin.Context) {
	detail, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", detail)
}

// GetAll handles GET /user
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "", users)
}

// UpdateProfileRequest is the HTTP request body for a profile update.
// Pointer fields distinguish "absent" from "set to zero".
type UpdateProfileRequest struct {
	FullName    *string           `json:"fullName"`
	Phone       *string           `json:"phone"`
	DateOfBirth *string           `json:"dateOfBirth"`
	Gender      *string           `json:"gender"`
	Image       *string           `json:"image"`
	Addresses   *[]domain.Address `json:"addresses"`
	Email       *string           `json:"email"`
}

// Update handles PUT /user/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), c.Param("id"), service.UpdateProfileRequest{
		FullName:    req.FullName,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Image:       req.Image,
		Addresses:   req.Addresses,
		Email:       req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Profile updated successfully", user)
}

// UpdatePasswordRequest is the HTTP request body for a password change.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatePassword handles PUT /user/:id/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := h.userService.UpdatePassword(c.Request.Context(), c.Param("id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Password updated successfully", nil)
}

// AddAddress handles POST /user/:id/addresses
func (h *UserHandler) AddAddress(c *gin.Context) {
	var addr domain.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.AddAddress(c.Request.Context(), c.Param("id"), addr)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Address added successfully", user)
}

// Delete handles DELETE /user/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "User deleted successfully", nil)
}
