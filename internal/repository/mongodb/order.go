package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// OrderRepository is a MongoDB implementation of repository.OrderRepository.
type OrderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository creates a new MongoDB order repository.
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(ordersCollection)}
}

// Create persists a new order and fills in the assigned ID.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return mapError(err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves an order by ID.
func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, mapError(err)
	}
	return &order, nil
}

// GetByIDs retrieves the orders whose IDs appear in ids, newest first.
func (r *OrderRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// GetByUserID retrieves a user's orders, newest first.
func (r *OrderRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"userID": userID})
}

// GetAll retrieves all orders, newest first.
func (r *OrderRepository) GetAll(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	cursor, err := r.col.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	var orders []*domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Assign binds a rider to the order and moves it to Assigned.
func (r *OrderRepository) Assign(ctx context.Context, id, riderID primitive.ObjectID) (*domain.Order, error) {
	update := bson.M{"$set": bson.M{
		"riderId":     riderID,
		"orderStatus": domain.OrderStatusAssigned,
	}}

	var order domain.Order
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, returnUpdated()).Decode(&order); err != nil {
		return nil, mapError(err)
	}
	return &order, nil
}

// UpdateStatus overwrites the order status and tracking URL.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus, trackingURL string) (*domain.Order, error) {
	set := bson.M{"orderStatus": status}
	if trackingURL != "" {
		set["trackingUrl"] = trackingURL
	}

	var order domain.Order
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnUpdated()).Decode(&order); err != nil {
		return nil, mapError(err)
	}
	return &order, nil
}

// SetReview attaches the embedded review. The filter guards against an
// existing review so a second attach never overwrites the first.
func (r *OrderRepository) SetReview(ctx context.Context, id primitive.ObjectID, review domain.Review) error {
	filter := bson.M{
		"_id":    id,
		"review": bson.M{"$exists": false},
	}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"review": review}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an order.
func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
