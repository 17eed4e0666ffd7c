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

const bookingCollectionName = "bookings"

// mongoBookingRepository implements repository.BookingRepository using
// MongoDB.
type mongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new instance of
// mongoBookingRepository.
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &mongoBookingRepository{
		collection: db.Collection(bookingCollectionName),
	}
}

// Create inserts a booking record.
func (r *mongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	if booking.SlotID == "" || booking.Email == "" {
		return primitive.NilObjectID, errors.New("booking slotId and email are required")
	}

	booking.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// List returns all bookings.
func (r *mongoBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []domain.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByEmail returns the buyer's bookings.
func (r *mongoBookingRepository) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []domain.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Recent returns the latest bookings by date, newest first.
func (r *mongoBookingRepository) Recent(ctx context.Context, limit int64) ([]domain.Booking, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []domain.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Prices returns every booking price; the stats service sums them.
func (r *mongoBookingRepository) Prices(ctx context.Context) ([]float64, error) {
	findOpts := options.Find().SetProjection(bson.M{"_id": 0, "price": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Price float64 `bson:"price"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	prices := make([]float64, len(docs))
	for i, d := range docs {
		prices[i] = d.Price
	}
	return prices, nil
}

// Count returns the estimated number of bookings.
func (r *mongoBookingRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}

// EnsureBookingIndexes creates necessary indexes for the bookings
// collection.
func EnsureBookingIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
