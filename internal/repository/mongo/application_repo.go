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

const applicationCollectionName = "appliedTrainers"

// mongoApplicationRepository implements repository.ApplicationRepository
// using MongoDB.
type mongoApplicationRepository struct {
	collection *mongo.Collection
}

// NewMongoApplicationRepository creates a new instance of
// mongoApplicationRepository.
func NewMongoApplicationRepository(db *mongo.Database) repository.ApplicationRepository {
	return &mongoApplicationRepository{
		collection: db.Collection(applicationCollectionName),
	}
}

// Create inserts a new trainer application.
func (r *mongoApplicationRepository) Create(ctx context.Context, app *domain.TrainerApplication) (primitive.ObjectID, error) {
	if app.Email == "" {
		return primitive.NilObjectID, errors.New("application email is required")
	}

	app.ID = primitive.NewObjectID()
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, app)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single application.
func (r *mongoApplicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainerApplication, error) {
	var app domain.TrainerApplication
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// List returns all pending applications.
func (r *mongoApplicationRepository) List(ctx context.Context) ([]domain.TrainerApplication, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apps := []domain.TrainerApplication{}
	if err = cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// DeleteByEmail removes the application matching email and reports how
// many documents went away (0 or 1).
func (r *mongoApplicationRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByID removes the application by id.
func (r *mongoApplicationRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
