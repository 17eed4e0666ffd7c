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

const postCollectionName = "posts"

// mongoPostRepository implements repository.PostRepository using MongoDB.
type mongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new instance of mongoPostRepository.
func NewMongoPostRepository(db *mongo.Database) repository.PostRepository {
	return &mongoPostRepository{
		collection: db.Collection(postCollectionName),
	}
}

// Create inserts a community post.
func (r *mongoPostRepository) Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if post.Title == "" {
		return primitive.NilObjectID, errors.New("post title is required")
	}

	post.ID = primitive.NewObjectID()
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// List returns a page of posts, optionally newest first.
func (r *mongoPostRepository) List(ctx context.Context, opts repository.PostListOptions) ([]domain.Post, error) {
	findOpts := options.Find()
	if opts.RecentFirst {
		findOpts.SetSort(bson.D{{Key: "timestamp", Value: -1}})
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []domain.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// AddUpvotes atomically bumps the upvote counter.
func (r *mongoPostRepository) AddUpvotes(ctx context.Context, id primitive.ObjectID, n int64) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"upvote": n}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddDownvotes atomically bumps the downvote counter.
func (r *mongoPostRepository) AddDownvotes(ctx context.Context, id primitive.ObjectID, n int64) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"downvote": n}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the estimated number of posts.
func (r *mongoPostRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}
