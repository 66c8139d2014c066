package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// WarehouseRepository is a MongoDB implementation of repository.WarehouseRepository.
type WarehouseRepository struct {
	col *mongo.Collection
}

// NewWarehouseRepository creates a new MongoDB warehouse repository.
func NewWarehouseRepository(db *mongo.Database) *WarehouseRepository {
	return &WarehouseRepository{col: db.Collection(warehousesCollection)}
}

// Create persists a new warehouse and fills in the assigned ID.
func (r *WarehouseRepository) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	res, err := r.col.InsertOne(ctx, warehouse)
	if err != nil {
		return mapError(err)
	}
	warehouse.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves a warehouse by ID.
func (r *WarehouseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&warehouse); err != nil {
		return nil, mapError(err)
	}
	return &warehouse, nil
}

// GetAll retrieves all warehouses, newest first.
func (r *WarehouseRepository) GetAll(ctx context.Context) ([]*domain.Warehouse, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	var warehouses []*domain.Warehouse
	if err := cursor.All(ctx, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// Update replaces the mutable fields and returns the updated warehouse.
func (r *WarehouseRepository) Update(ctx context.Context, id primitive.ObjectID, warehouse *domain.Warehouse) (*domain.Warehouse, error) {
	set := bson.M{
		"name":      warehouse.Name,
		"address":   warehouse.Address,
		"latitude":  warehouse.Latitude,
		"longitude": warehouse.Longitude,
		"updatedAt": time.Now(),
	}

	var updated domain.Warehouse
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnUpdated()).Decode(&updated); err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

// Delete removes a warehouse.
func (r *WarehouseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
