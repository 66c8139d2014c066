package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of order lifecycle states. Status values are
// validated at every command boundary; free-form strings are never written.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAssigned  OrderStatus = "Assigned"
	OrderStatusInTransit OrderStatus = "InTransit"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAssigned, OrderStatusInTransit,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s releases the assigned rider back to Available.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem is a single line item on an order.
type OrderItem struct {
	ProductID string  `bson:"productID,omitempty" json:"productID,omitempty"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// Review is a customer review embedded in a delivered order. It is settable
// at most once.
type Review struct {
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	ReviewedAt time.Time `bson:"reviewedAt" json:"reviewedAt"`
}

// Order links a user, items, and (once assigned) a rider.
type Order struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID  `bson:"userID" json:"userID"`
	RiderID         *primitive.ObjectID `bson:"riderId,omitempty" json:"riderId,omitempty"`
	Status          OrderStatus         `bson:"orderStatus" json:"orderStatus"`
	Items           []OrderItem         `bson:"items" json:"items"`
	TotalPrice      float64             `bson:"totalPrice" json:"totalPrice"`
	OrderTotal      float64             `bson:"orderTotal" json:"orderTotal"`
	CouponID        primitive.ObjectID  `bson:"couponCode" json:"couponCode"`
	ShippingAddress Address             `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string              `bson:"paymentMethod" json:"paymentMethod"`
	TrackingURL     string              `bson:"trackingUrl,omitempty" json:"trackingUrl,omitempty"`
	Review          *Review             `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
}
