package service

import "errors"

// Validation errors (HTTP 400).
var (
	// ErrInvalidID is returned when an identifier is not a valid object id.
	ErrInvalidID = errors.New("invalid id")

	// ErrMissingUserFields is returned when user registration lacks required fields.
	ErrMissingUserFields = errors.New("fullName, email, phone, password and at least one address are required")

	// ErrMissingRiderFields is returned when rider registration lacks required fields.
	ErrMissingRiderFields = errors.New("name, phone number, vehicle details, email, and password are required")

	// ErrMissingCredentials is returned when a login request lacks email or password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrMissingPasswordFields is returned when a password change lacks either password.
	ErrMissingPasswordFields = errors.New("current and new password are required")

	// ErrEmailTaken is returned when a registration email is already present.
	ErrEmailTaken = errors.New("email already registered")

	// ErrRiderContactTaken is returned when a rider email or phone collides
	// with an existing rider.
	ErrRiderContactTaken = errors.New("phone number or email already registered")

	// ErrEmailImmutable is returned when a profile update tries to change the email.
	ErrEmailImmutable = errors.New("email cannot be updated")

	// ErrMissingOrderFields is returned when order creation lacks required fields.
	ErrMissingOrderFields = errors.New("user id, rider id, items, totalPrice, couponCode, shippingAddress, paymentMethod and orderTotal are required")

	// ErrMissingRiderID is returned when an assignment request lacks the rider id.
	ErrMissingRiderID = errors.New("rider id is required")

	// ErrMissingStatus is returned when a status update carries no status.
	ErrMissingStatus = errors.New("status is required")

	// ErrInvalidOrderStatus is returned when a status is outside the closed order set.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrInvalidRiderStatus is returned when a status is outside the closed rider set.
	ErrInvalidRiderStatus = errors.New("invalid rider status")

	// ErrRiderStatusReserved is returned when the rider status route is asked
	// to set Busy, which only dispatch may set.
	ErrRiderStatusReserved = errors.New("busy status is set by order assignment only")

	// ErrInvalidRating is returned when a review rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrMissingWarehouseFields is returned when a warehouse payload lacks required fields.
	ErrMissingWarehouseFields = errors.New("name, address, latitude and longitude are required")

	// ErrMissingCouponFields is returned when a coupon payload lacks required fields.
	ErrMissingCouponFields = errors.New("couponCode, discountType and discountAmount are required")
)

// Auth errors (HTTP 401).
var (
	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password. The message never says which.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWrongPassword is returned when a password change carries the wrong
	// current password.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrUnauthenticated is returned when a mutating command runs without an
	// authenticated principal in context.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrRiderMismatch is returned when a rider-authenticated call names a
	// different rider than the token subject.
	ErrRiderMismatch = errors.New("token does not match rider")
)

// State errors (HTTP 400): legal input, illegal transition.
var (
	// ErrRiderNotAvailable is returned when assigning to a rider whose
	// status is anything but Available.
	ErrRiderNotAvailable = errors.New("rider is not available for new orders")

	// ErrRiderLocked is returned when another assignment currently holds the
	// rider lock.
	ErrRiderLocked = errors.New("rider is being assigned to another order")

	// ErrOrderNotDelivered is returned when a review targets an order that
	// is not Delivered.
	ErrOrderNotDelivered = errors.New("review can only be added for delivered orders")

	// ErrOrderAlreadyReviewed is returned on a second review attempt; the
	// first review is never overwritten.
	ErrOrderAlreadyReviewed = errors.New("order already has a review")
)

// Not-found errors (HTTP 404).
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRiderNotFound     = errors.New("rider not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrCouponNotFound    = errors.New("coupon not found")
)
