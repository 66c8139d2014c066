package service

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// CouponService handles coupon operations.
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService creates a new CouponService.
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// CreateCouponRequest contains the parameters for coupon creation.
type CreateCouponRequest struct {
	Code                  string
	DiscountType          domain.DiscountType
	DiscountAmount        float64
	MinimumPurchaseAmount float64
	EndDate               time.Time
	Status                string
}

// Create persists a new coupon.
func (s *CouponService) Create(ctx context.Context, req CreateCouponRequest) (*domain.Coupon, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}
	if req.Code == "" || req.DiscountType == "" || req.DiscountAmount == 0 {
		return nil, ErrMissingCouponFields
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	coupon := &domain.Coupon{
		Code:                  req.Code,
		DiscountType:          req.DiscountType,
		DiscountAmount:        req.DiscountAmount,
		MinimumPurchaseAmount: req.MinimumPurchaseAmount,
		EndDate:               req.EndDate,
		Status:                status,
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Get retrieves a coupon by ID.
func (s *CouponService) Get(ctx context.Context, id string) (*domain.Coupon, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

// GetByCode retrieves a coupon by its code.
func (s *CouponService) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

// List retrieves all coupons, newest first.
func (s *CouponService) List(ctx context.Context) ([]*domain.Coupon, error) {
	return s.couponRepo.GetAll(ctx)
}

// UpdateCouponRequest contains the fields a coupon update may change.
// Nil fields are left untouched.
type UpdateCouponRequest struct {
	Code                  *string
	DiscountType          *domain.DiscountType
	DiscountAmount        *float64
	MinimumPurchaseAmount *float64
	EndDate               *time.Time
	Status                *string
}

// Update applies a partial update to a coupon.
func (s *CouponService) Update(ctx context.Context, id string, req UpdateCouponRequest) (*domain.Coupon, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	current, err := s.couponRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	if req.Code != nil {
		current.Code = *req.Code
	}
	if req.DiscountType != nil {
		current.DiscountType = *req.DiscountType
	}
	if req.DiscountAmount != nil {
		current.DiscountAmount = *req.DiscountAmount
	}
	if req.MinimumPurchaseAmount != nil {
		current.MinimumPurchaseAmount = *req.MinimumPurchaseAmount
	}
	if req.EndDate != nil {
		current.EndDate = *req.EndDate
	}
	if req.Status != nil {
		current.Status = *req.Status
	}

	coupon, err := s.couponRepo.Update(ctx, oid, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

// Delete removes a coupon.
func (s *CouponService) Delete(ctx context.Context, id string) error {
	if _, err := requirePrincipal(ctx); err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.couponRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	return nil
}
