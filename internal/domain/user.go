package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a customer account.
type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FullName    string               `bson:"fullName" json:"fullName"`
	Email       string               `bson:"email" json:"email"`
	Phone       string               `bson:"phone" json:"phone"`
	Password    string               `bson:"password" json:"-"`
	DateOfBirth string               `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender      string               `bson:"gender,omitempty" json:"gender,omitempty"`
	Image       string               `bson:"image,omitempty" json:"image,omitempty"`
	Addresses   []Address            `bson:"addresses" json:"addresses"`
	Orders      []primitive.ObjectID `bson:"orders,omitempty" json:"orders,omitempty"`
	Reviews     []primitive.ObjectID `bson:"reviews,omitempty" json:"reviews,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
}

// UserPatch carries the mutable profile fields for a partial update.
// Nil fields are left untouched. Email is deliberately absent: it cannot
// be changed through the profile-update path.
type UserPatch struct {
	FullName    *string
	Phone       *string
	DateOfBirth *string
	Gender      *string
	Image       *string
	Addresses   *[]Address
}

// IsZero reports whether the patch carries no fields.
func (p UserPatch) IsZero() bool {
	return p.FullName == nil && p.Phone == nil && p.DateOfBirth == nil &&
		p.Gender == nil && p.Image == nil && p.Addresses == nil
}
