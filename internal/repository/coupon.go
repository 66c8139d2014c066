package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
)

// CouponRepository defines the persistence operations for coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coupon, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Coupon, error)
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	GetAll(ctx context.Context) ([]*domain.Coupon, error)

	// Update replaces the mutable fields and returns the updated coupon.
	Update(ctx context.Context, id primitive.ObjectID, coupon *domain.Coupon) (*domain.Coupon, error)

	Delete(ctx context.Context, id primitive.ObjectID) error
}
