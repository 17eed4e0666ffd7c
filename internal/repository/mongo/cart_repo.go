package mongo

import (
	"context"
	"errors"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cartCollectionName = "carts"

// mongoCartRepository implements repository.CartRepository using MongoDB.
type mongoCartRepository struct {
	collection *mongo.Collection
}

// NewMongoCartRepository creates a new instance of mongoCartRepository.
func NewMongoCartRepository(db *mongo.Database) repository.CartRepository {
	return &mongoCartRepository{
		collection: db.Collection(cartCollectionName),
	}
}

// Upsert writes the cart entry keyed by slotId, replacing any existing
// hold for the same slot.
func (r *mongoCartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	if item.SlotID == "" {
		return errors.New("cart slotId is required")
	}

	filter := bson.M{"slotId": item.SlotID}
	update := bson.M{"$set": bson.M{
		"slotId":    item.SlotID,
		"slotName":  item.SlotName,
		"trainerId": item.TrainerID,
		"name":      item.Name,
		"email":     item.Email,
		"price":     item.Price,
		"classes":   item.Classes,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByEmail returns the caller's current cart entry.
func (r *mongoCartRepository) GetByEmail(ctx context.Context, email string) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// DeleteBySlotID removes the hold for the given slot and reports the
// deleted count.
func (r *mongoCartRepository) DeleteBySlotID(ctx context.Context, slotID string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"slotId": slotID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
