package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/repository"
	"dispatch/internal/service"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// respondData sends a success envelope with the given status code.
func respondData(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{Success: true, Message: message, Data: data})
}

// respondError sends a failure envelope with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, Response{Success: false, Message: err.Error()})
}

// respondBadRequest sends a 400 failure envelope with a literal message.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: message})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRiderNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrWarehouseNotFound),
		errors.Is(err, service.ErrCouponNotFound):
		return http.StatusNotFound

	// Authentication errors
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrRiderMismatch):
		return http.StatusUnauthorized

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrMissingUserFields),
		errors.Is(err, service.ErrMissingRiderFields),
		errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrMissingPasswordFields),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrRiderContactTaken),
		errors.Is(err, service.ErrEmailImmutable),
		errors.Is(err, service.ErrMissingOrderFields),
		errors.Is(err, service.ErrMissingRiderID),
		errors.Is(err, service.ErrMissingStatus),
		errors.Is(err, service.ErrInvalidOrderStatus),
		errors.Is(err, service.ErrInvalidRiderStatus),
		errors.Is(err, service.ErrRiderStatusReserved),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrMissingWarehouseFields),
		errors.Is(err, service.ErrMissingCouponFields):
		return http.StatusBadRequest

	// State errors - the request is well-formed but the record cannot
	// accept it right now
	case errors.Is(err, service.ErrRiderNotAvailable),
		errors.Is(err, service.ErrRiderLocked),
		errors.Is(err, service.ErrOrderNotDelivered),
		errors.Is(err, service.ErrOrderAlreadyReviewed):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
