package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
)

// WarehouseRepository defines the persistence operations for warehouses.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *domain.Warehouse) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Warehouse, error)
	GetAll(ctx context.Context) ([]*domain.Warehouse, error)

	// Update replaces the mutable fields and returns the updated warehouse.
	Update(ctx context.Context, id primitive.ObjectID, warehouse *domain.Warehouse) (*domain.Warehouse, error)

	Delete(ctx context.Context, id primitive.ObjectID) error
}
