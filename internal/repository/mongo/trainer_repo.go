package mongo

import (
	"context"
	"errors"
	"time"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainerCollectionName = "trainers"

// mongoTrainerRepository implements repository.TrainerRepository using
// MongoDB.
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new instance of
// mongoTrainerRepository.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Create inserts a promoted trainer record.
func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	if trainer.Email == "" {
		return primitive.NilObjectID, errors.New("trainer email is required")
	}

	if trainer.ID.IsZero() {
		trainer.ID = primitive.NewObjectID()
	}
	if trainer.PromotedAt.IsZero() {
		trainer.PromotedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, trainer)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a trainer by ObjectID.
func (r *mongoTrainerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetByEmail retrieves a trainer by email.
func (r *mongoTrainerRepository) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetByIDs fetches all trainers whose id is in ids.
func (r *mongoTrainerRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Trainer, error) {
	if len(ids) == 0 {
		return []domain.Trainer{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trainers := []domain.Trainer{}
	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// List returns trainers, optionally capped and with the lightweight
// "team" projection used on the landing page.
func (r *mongoTrainerRepository) List(ctx context.Context, limit int64, teamOnly bool) ([]domain.Trainer, error) {
	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}
	if teamOnly {
		findOpts.SetProjection(bson.M{"name": 1, "photo": 1, "background": 1, "specializations": 1})
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trainers := []domain.Trainer{}
	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// Delete removes a trainer record and reports the deleted count.
func (r *mongoTrainerRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// Count returns the estimated number of trainers.
func (r *mongoTrainerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}

// PushAvailableSlot appends a slot summary to the trainer's
// availableSlots list.
func (r *mongoTrainerRepository) PushAvailableSlot(ctx context.Context, trainerID primitive.ObjectID, summary domain.SlotSummary) error {
	filter := bson.M{"_id": trainerID}
	update := bson.M{"$push": bson.M{"availableSlots": summary}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// PullAvailableSlot removes the summary referencing slotID from the
// trainer that holds it. When no trainer references the slot the update
// matches nothing and no error is raised.
func (r *mongoTrainerRepository) PullAvailableSlot(ctx context.Context, slotID primitive.ObjectID) error {
	filter := bson.M{"availableSlots": bson.M{"$elemMatch": bson.M{"slotId": slotID}}}
	update := bson.M{"$pull": bson.M{"availableSlots": bson.M{"slotId": slotID}}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// EnsureTrainerIndexes creates necessary indexes for the trainers
// collection.
func EnsureTrainerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "availableSlots.slotId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
