package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// CouponRepository is a MongoDB implementation of repository.CouponRepository.
type CouponRepository struct {
	col *mongo.Collection
}

// NewCouponRepository creates a new MongoDB coupon repository.
func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{col: db.Collection(couponsCollection)}
}

// Create persists a new coupon and fills in the assigned ID.
func (r *CouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	res, err := r.col.InsertOne(ctx, coupon)
	if err != nil {
		return mapError(err)
	}
	coupon.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves a coupon by ID.
func (r *CouponRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon); err != nil {
		return nil, mapError(err)
	}
	return &coupon, nil
}

// GetByIDs retrieves the coupons whose IDs appear in ids.
func (r *CouponRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Coupon, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var coupons []*domain.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// GetByCode retrieves a coupon by its code.
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := r.col.FindOne(ctx, bson.M{"couponCode": code}).Decode(&coupon); err != nil {
		return nil, mapError(err)
	}
	return &coupon, nil
}

// GetAll retrieves all coupons, newest first.
func (r *CouponRepository) GetAll(ctx context.Context) ([]*domain.Coupon, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	var coupons []*domain.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// Update replaces the mutable fields and returns the updated coupon.
func (r *CouponRepository) Update(ctx context.Context, id primitive.ObjectID, coupon *domain.Coupon) (*domain.Coupon, error) {
	set := bson.M{
		"couponCode":            coupon.Code,
		"discountType":          coupon.DiscountType,
		"discountAmount":        coupon.DiscountAmount,
		"minimumPurchaseAmount": coupon.MinimumPurchaseAmount,
		"endDate":               coupon.EndDate,
		"status":                coupon.Status,
	}

	var updated domain.Coupon
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnUpdated()).Decode(&updated); err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

// Delete removes a coupon.
func (r *CouponRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
