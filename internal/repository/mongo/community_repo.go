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
)

const (
	reviewCollectionName     = "reviews"
	subscriberCollectionName = "subscribers"
)

// mongoReviewRepository implements repository.ReviewRepository.
type mongoReviewRepository struct {
	collection *mongo.Collection
}

// NewMongoReviewRepository creates a new instance of
// mongoReviewRepository.
func NewMongoReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &mongoReviewRepository{
		collection: db.Collection(reviewCollectionName),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *domain.Review) (primitive.ObjectID, error) {
	if review.Feedback == "" {
		return primitive.NilObjectID, errors.New("review feedback is required")
	}

	review.ID = primitive.NewObjectID()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []domain.Review{}
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// mongoSubscriberRepository implements repository.SubscriberRepository.
type mongoSubscriberRepository struct {
	collection *mongo.Collection
}

// NewMongoSubscriberRepository creates a new instance of
// mongoSubscriberRepository.
func NewMongoSubscriberRepository(db *mongo.Database) repository.SubscriberRepository {
	return &mongoSubscriberRepository{
		collection: db.Collection(subscriberCollectionName),
	}
}

func (r *mongoSubscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) (primitive.ObjectID, error) {
	if sub.Email == "" {
		return primitive.NilObjectID, errors.New("subscriber email is required")
	}

	sub.ID = primitive.NewObjectID()
	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoSubscriberRepository) List(ctx context.Context) ([]domain.Subscriber, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []domain.Subscriber{}
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *mongoSubscriberRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}
