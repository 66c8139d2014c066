package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscountType selects how a coupon discount is applied.
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// Coupon is a discount code referenced by orders.
type Coupon struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code                  string             `bson:"couponCode" json:"couponCode"`
	DiscountType          DiscountType       `bson:"discountType" json:"discountType"`
	DiscountAmount        float64            `bson:"discountAmount" json:"discountAmount"`
	MinimumPurchaseAmount float64            `bson:"minimumPurchaseAmount" json:"minimumPurchaseAmount"`
	EndDate               time.Time          `bson:"endDate" json:"endDate"`
	Status                string             `bson:"status" json:"status"`
}
