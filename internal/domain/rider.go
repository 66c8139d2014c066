package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RiderStatus is the rider availability marker. It is the only field in the
// system with transition semantics: dispatch flips Available→Busy on
// assignment and Busy→Available when an order reaches a terminal status.
// Inactive and Suspended are set administratively and make the rider
// non-assignable.
type RiderStatus string

const (
	RiderStatusAvailable RiderStatus = "Available"
	RiderStatusBusy      RiderStatus = "Busy"
	RiderStatusInactive  RiderStatus = "Inactive"
	RiderStatusSuspended RiderStatus = "Suspended"
)

// Valid reports whether s is a member of the closed status set.
func (s RiderStatus) Valid() bool {
	switch s {
	case RiderStatusAvailable, RiderStatusBusy, RiderStatusInactive, RiderStatusSuspended:
		return true
	}
	return false
}

// Rider represents a delivery agent account.
type Rider struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name           string               `bson:"name" json:"name"`
	Phone          string               `bson:"phone_number" json:"phone_number"`
	Email          string               `bson:"email" json:"email"`
	Password       string               `bson:"password" json:"-"`
	VehicleDetails string               `bson:"vehicle_details" json:"vehicle_details"`
	Image          string               `bson:"image,omitempty" json:"image,omitempty"`
	DateOfBirth    string               `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender         string               `bson:"gender,omitempty" json:"gender,omitempty"`
	Addresses      []Address            `bson:"addresses,omitempty" json:"addresses,omitempty"`
	Orders         []primitive.ObjectID `bson:"orders,omitempty" json:"orders,omitempty"`
	CurrentStatus  RiderStatus          `bson:"current_status" json:"current_status"`
	AverageRating  float64              `bson:"averageRating" json:"averageRating"`
	ReviewCount    int                  `bson:"reviewCount" json:"reviewCount"`
	JoinDate       time.Time            `bson:"joinDate" json:"joinDate"`
}

// RiderPatch carries the mutable rider fields for a partial update.
type RiderPatch struct {
	Name           *string
	Phone          *string
	Email          *string
	VehicleDetails *string
	Image          *string
	DateOfBirth    *string
	Gender         *string
	Addresses      *[]Address
	Password       *string // already hashed by the caller
	CurrentStatus  *RiderStatus
}

// IsZero reports whether the patch carries no fields.
func (p RiderPatch) IsZero() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil &&
		p.VehicleDetails == nil && p.Image == nil && p.DateOfBirth == nil &&
		p.Gender == nil && p.Addresses == nil && p.Password == nil &&
		p.CurrentStatus == nil
}
