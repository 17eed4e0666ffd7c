package mongo

import (
	"context"
	"errors"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const slotCollectionName = "slots"

// mongoSlotRepository implements repository.SlotRepository using MongoDB.
type mongoSlotRepository struct {
	collection *mongo.Collection
}

// NewMongoSlotRepository creates a new instance of mongoSlotRepository.
func NewMongoSlotRepository(db *mongo.Database) repository.SlotRepository {
	return &mongoSlotRepository{
		collection: db.Collection(slotCollectionName),
	}
}

// Create inserts a new slot.
func (r *mongoSlotRepository) Create(ctx context.Context, slot *domain.Slot) (primitive.ObjectID, error) {
	if slot.SlotName == "" || slot.Trainer.ID.IsZero() {
		return primitive.NilObjectID, errors.New("slot name and trainer are required")
	}

	slot.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, slot)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a slot by ObjectID.
func (r *mongoSlotRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Slot, error) {
	var slot domain.Slot
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// GetByTrainerEmail returns all slots offered by the trainer with the
// given email.
func (r *mongoSlotRepository) GetByTrainerEmail(ctx context.Context, email string) ([]domain.Slot, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"trainer.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	slots := []domain.Slot{}
	if err = cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// Delete removes a slot and reports the deleted count.
func (r *mongoSlotRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// AddAttendee appends a buyer to the slot's bookedBy list.
func (r *mongoSlotRepository) AddAttendee(ctx context.Context, slotID primitive.ObjectID, attendee domain.Attendee) error {
	filter := bson.M{"_id": slotID}
	update := bson.M{"$push": bson.M{"bookedBy": attendee}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSlotIndexes creates necessary indexes for the slots collection.
func EnsureSlotIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainer.email", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
