package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// RiderRepository is a MongoDB implementation of repository.RiderRepository.
type RiderRepository struct {
	col *mongo.Collection
}

// NewRiderRepository creates a new MongoDB rider repository.
func NewRiderRepository(db *mongo.Database) *RiderRepository {
	return &RiderRepository{col: db.Collection(ridersCollection)}
}

// Create persists a new rider and fills in the assigned ID.
func (r *RiderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	res, err := r.col.InsertOne(ctx, rider)
	if err != nil {
		return mapError(err)
	}
	rider.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves a rider by ID.
func (r *RiderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Rider, error) {
	var rider domain.Rider
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rider); err != nil {
		return nil, mapError(err)
	}
	return &rider, nil
}

// GetByEmail retrieves a rider by email.
func (r *RiderRepository) GetByEmail(ctx context.Context, email string) (*domain.Rider, error) {
	var rider domain.Rider
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&rider); err != nil {
		return nil, mapError(err)
	}
	return &rider, nil
}

// GetByContact retrieves a rider matching either email or phone in a single
// lookup.
func (r *RiderRepository) GetByContact(ctx context.Context, email, phone string) (*domain.Rider, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"phone_number": phone},
	}}

	var rider domain.Rider
	if err := r.col.FindOne(ctx, filter).Decode(&rider); err != nil {
		return nil, mapError(err)
	}
	return &rider, nil
}

// ContactTaken reports whether any rider other than exclude holds the given
// email or phone.
func (r *RiderRepository) ContactTaken(ctx context.Context, exclude primitive.ObjectID, email, phone string) (bool, error) {
	var contacts bson.A
	if email != "" {
		contacts = append(contacts, bson.M{"email": email})
	}
	if phone != "" {
		contacts = append(contacts, bson.M{"phone_number": phone})
	}
	if len(contacts) == 0 {
		return false, nil
	}

	filter := bson.M{
		"_id": bson.M{"$ne": exclude},
		"$or": contacts,
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByIDs retrieves the riders whose IDs appear in ids.
func (r *RiderRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Rider, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var riders []*domain.Rider
	if err := cursor.All(ctx, &riders); err != nil {
		return nil, err
	}
	return riders, nil
}

// GetAll retrieves all riders, newest first.
func (r *RiderRepository) GetAll(ctx context.Context) ([]*domain.Rider, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	var riders []*domain.Rider
	if err := cursor.All(ctx, &riders); err != nil {
		return nil, err
	}
	return riders, nil
}

// UpdateProfile applies the non-nil patch fields and returns the updated rider.
func (r *RiderRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, patch domain.RiderPatch) (*domain.Rider, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Phone != nil {
		set["phone_number"] = *patch.Phone
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.VehicleDetails != nil {
		set["vehicle_details"] = *patch.VehicleDetails
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.DateOfBirth != nil {
		set["dateOfBirth"] = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.Addresses != nil {
		set["addresses"] = *patch.Addresses
	}
	if patch.Password != nil {
		set["password"] = *patch.Password
	}
	if patch.CurrentStatus != nil {
		set["current_status"] = *patch.CurrentStatus
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var rider domain.Rider
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnUpdated()).Decode(&rider)
	if err != nil {
		return nil, mapError(err)
	}
	return &rider, nil
}

// UpdateStatus updates the rider availability status.
func (r *RiderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.RiderStatus) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"current_status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AppendOrder adds orderID to the rider's order list at most once.
func (r *RiderRepository) AppendOrder(ctx context.Context, id, orderID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{"orders": orderID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateRating replaces the aggregate rating fields.
func (r *RiderRepository) UpdateRating(ctx context.Context, id primitive.ObjectID, average float64, count int) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"averageRating": average,
		"reviewCount":   count,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a rider.
func (r *RiderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
