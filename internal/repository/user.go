package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// Create persists a new user and fills in the assigned ID.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByIDs retrieves the users whose IDs appear in ids.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.User, error)

	// GetAll retrieves all users, newest first.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile applies the non-nil patch fields and returns the updated user.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, patch domain.UserPatch) (*domain.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error

	// AddAddress appends an address and returns the updated user.
	AddAddress(ctx context.Context, id primitive.ObjectID, addr domain.Address) (*domain.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
