package repository

import (
	"context"

	"fitbelievers/gym-server/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound      = RepositoryError("not found")
	ErrAlreadyExists = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ClassListOptions controls pagination and projection for class listing.
// Skip/Limit of zero mean "from the start" / "no cap".
type ClassListOptions struct {
	Skip      int64
	Limit     int64
	NamesOnly bool
}

// PostListOptions controls pagination and ordering for post listing.
type PostListOptions struct {
	Skip        int64
	Limit       int64
	RecentFirst bool
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetRoleByEmail returns how many documents matched and how many were
	// actually modified; the promotion workflow needs both to tell a
	// missing user apart from an already-promoted one.
	SetRoleByEmail(ctx context.Context, email string, role domain.Role) (matched, modified int64, err error)
	SetStatusByEmail(ctx context.Context, email, status string) error
}

// ClassRepository defines the interface for the class catalog.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error)
	GetByName(ctx context.Context, name string) (*domain.Class, error)
	List(ctx context.Context, opts ClassListOptions) ([]domain.Class, error)
	TopByBookings(ctx context.Context, limit int64) ([]domain.Class, error)
	Count(ctx context.Context) (int64, error)
	// AddTrainerToClasses pushes the trainer summary onto every class
	// whose name appears in names. Returns the number of classes updated.
	AddTrainerToClasses(ctx context.Context, names []string, trainer domain.ClassTrainer) (int64, error)
	// IncrementBookings bumps numberOfBookings on every named class.
	IncrementBookings(ctx context.Context, names []string) (int64, error)
}

// ApplicationRepository stores trainer applications awaiting review.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.TrainerApplication) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainerApplication, error)
	List(ctx context.Context) ([]domain.TrainerApplication, error)
	// DeleteByEmail returns the number of applications removed (0 or 1).
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// TrainerRepository defines the interface for promoted trainers.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Trainer, error)
	List(ctx context.Context, limit int64, teamOnly bool) ([]domain.Trainer, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	PushAvailableSlot(ctx context.Context, trainerID primitive.ObjectID, summary domain.SlotSummary) error
	// PullAvailableSlot removes the summary referencing slotID from
	// whichever trainer holds it; a miss is a no-op, not an error.
	PullAvailableSlot(ctx context.Context, slotID primitive.ObjectID) error
}

// SlotRepository defines the interface for bookable slots.
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Slot, error)
	GetByTrainerEmail(ctx context.Context, email string) ([]domain.Slot, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	AddAttendee(ctx context.Context, slotID primitive.ObjectID, attendee domain.Attendee) error
}

// CartRepository stores pre-booking holds keyed by slot id.
type CartRepository interface {
	Upsert(ctx context.Context, item *domain.CartItem) error
	GetByEmail(ctx context.Context, email string) (*domain.CartItem, error)
	DeleteBySlotID(ctx context.Context, slotID string) (int64, error)
}

// BookingRepository defines the interface for completed bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	Recent(ctx context.Context, limit int64) ([]domain.Booking, error)
	Prices(ctx context.Context) ([]float64, error)
	Count(ctx context.Context) (int64, error)
}

// PostRepository defines the interface for community posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error)
	List(ctx context.Context, opts PostListOptions) ([]domain.Post, error)
	AddUpvotes(ctx context.Context, id primitive.ObjectID, n int64) error
	AddDownvotes(ctx context.Context, id primitive.ObjectID, n int64) error
	Count(ctx context.Context) (int64, error)
}

// ReviewRepository defines the interface for member reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.Review, error)
}

// SubscriberRepository defines the interface for newsletter signups.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *domain.Subscriber) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.Subscriber, error)
	Count(ctx context.Context) (int64, error)
}
