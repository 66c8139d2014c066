package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
)

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// Create persists a new order and fills in the assigned ID.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by ID.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)

	// GetByIDs retrieves the orders whose IDs appear in ids, newest first.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Order, error)

	// GetByUserID retrieves a user's orders, newest first.
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*domain.Order, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]*domain.Order, error)

	// Assign binds a rider to the order and moves it to Assigned, returning
	// the updated order.
	Assign(ctx context.Context, id, riderID primitive.ObjectID) (*domain.Order, error)

	// UpdateStatus overwrites the order status and tracking URL, returning
	// the updated order.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus, trackingURL string) (*domain.Order, error)

	// SetReview attaches the embedded review. It fails with ErrNotFound when
	// the order is missing or a review is already present.
	SetReview(ctx context.Context, id primitive.ObjectID, review domain.Review) error

	// Delete removes an order.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
