package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
)

// RiderRepository defines the persistence operations for riders.
type RiderRepository interface {
	// Create persists a new rider and fills in the assigned ID.
	Create(ctx context.Context, rider *domain.Rider) error

	// GetByID retrieves a rider by ID.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Rider, error)

	// GetByEmail retrieves a rider by email.
	GetByEmail(ctx context.Context, email string) (*domain.Rider, error)

	// GetByContact retrieves a rider matching either email or phone. Both
	// fields are checked in a single lookup.
	GetByContact(ctx context.Context, email, phone string) (*domain.Rider, error)

	// ContactTaken reports whether any rider other than exclude holds the
	// given email or phone.
	ContactTaken(ctx context.Context, exclude primitive.ObjectID, email, phone string) (bool, error)

	// GetByIDs retrieves the riders whose IDs appear in ids.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Rider, error)

	// GetAll retrieves all riders, newest first.
	GetAll(ctx context.Context) ([]*domain.Rider, error)

	// UpdateProfile applies the non-nil patch fields and returns the updated rider.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, patch domain.RiderPatch) (*domain.Rider, error)

	// UpdateStatus updates the rider availability status.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.RiderStatus) error

	// AppendOrder adds orderID to the rider's order list at most once.
	AppendOrder(ctx context.Context, id, orderID primitive.ObjectID) error

	// UpdateRating replaces the aggregate rating fields.
	UpdateRating(ctx context.Context, id primitive.ObjectID, average float64, count int) error

	// Delete removes a rider.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
