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

const classCollectionName = "classes"

// mongoClassRepository implements repository.ClassRepository using MongoDB.
type mongoClassRepository struct {
	collection *mongo.Collection
}

// NewMongoClassRepository creates a new instance of mongoClassRepository.
func NewMongoClassRepository(db *mongo.Database) repository.ClassRepository {
	return &mongoClassRepository{
		collection: db.Collection(classCollectionName),
	}
}

// Create inserts a new class into the catalog.
func (r *mongoClassRepository) Create(ctx context.Context, class *domain.Class) (primitive.ObjectID, error) {
	if class.Name == "" {
		return primitive.NilObjectID, errors.New("class name is required")
	}

	class.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a class by its ObjectID.
func (r *mongoClassRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error) {
	var class domain.Class
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

// GetByName retrieves a class by its (unique-ish) name.
func (r *mongoClassRepository) GetByName(ctx context.Context, name string) (*domain.Class, error) {
	var class domain.Class
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

// List returns a page of classes in natural collection order.
func (r *mongoClassRepository) List(ctx context.Context, opts repository.ClassListOptions) ([]domain.Class, error) {
	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.NamesOnly {
		findOpts.SetProjection(bson.M{"_id": 0, "name": 1})
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []domain.Class{}
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// TopByBookings returns the most-booked classes with a landing-page
// projection.
func (r *mongoClassRepository) TopByBookings(ctx context.Context, limit int64) ([]domain.Class, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "numberOfBookings", Value: -1}}).
		SetProjection(bson.M{"name": 1, "description": 1, "image": 1, "numberOfBookings": 1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []domain.Class{}
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// Count returns the estimated number of classes.
func (r *mongoClassRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}

// AddTrainerToClasses pushes the trainer summary onto every class whose
// name is in names.
func (r *mongoClassRepository) AddTrainerToClasses(ctx context.Context, names []string, trainer domain.ClassTrainer) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	filter := bson.M{"name": bson.M{"$in": names}}
	update := bson.M{"$push": bson.M{"trainers": trainer}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// IncrementBookings bumps numberOfBookings on every named class. The
// increment is atomic per document.
func (r *mongoClassRepository) IncrementBookings(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	filter := bson.M{"name": bson.M{"$in": names}}
	update := bson.M{"$inc": bson.M{"numberOfBookings": 1}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// EnsureClassIndexes creates necessary indexes for the classes collection.
func EnsureClassIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "numberOfBookings", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
