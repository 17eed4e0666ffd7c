package service

import (
	"context"
	"errors"
	"log"
	"time"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/metrics"
	"fitbelievers/gym-server/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrCartNotFound = errors.New("cart entry not found")

// BookingService covers the cart and the booking workflow. A booking
// insert is the only step whose outcome reaches the client; the slot
// update, cart cleanup and class counters are best effort behind it so
// the payment confirmation stays fast.
type BookingService interface {
	UpsertCart(ctx context.Context, item *domain.CartItem) error
	GetCart(ctx context.Context, email string) (*domain.CartItem, error)
	CreateBooking(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	// BookedTrainers resolves the trainers behind a buyer's bookings.
	BookedTrainers(ctx context.Context, email string) ([]domain.Trainer, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	cartRepo    repository.CartRepository
	slotRepo    repository.SlotRepository
	classRepo   repository.ClassRepository
	trainerRepo repository.TrainerRepository
}

// NewBookingService creates a new instance of bookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	cartRepo repository.CartRepository,
	slotRepo repository.SlotRepository,
	classRepo repository.ClassRepository,
	trainerRepo repository.TrainerRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		cartRepo:    cartRepo,
		slotRepo:    slotRepo,
		classRepo:   classRepo,
		trainerRepo: trainerRepo,
	}
}

func (s *bookingService) UpsertCart(ctx context.Context, item *domain.CartItem) error {
	if item.SlotID == "" {
		return errors.New("cart slotId is required")
	}
	return s.cartRepo.Upsert(ctx, item)
}

func (s *bookingService) GetCart(ctx context.Context, email string) (*domain.CartItem, error) {
	item, err := s.cartRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return item, nil
}

// CreateBooking inserts the booking record, then runs the dependent
// side effects in order: append the buyer to the slot's bookedBy list,
// drop the cart hold for the slot, bump numberOfBookings on every
// covered class. Only the insert decides the response; side-effect
// failures are counted and logged, never compensated.
func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	if booking.SlotID == "" || booking.Email == "" {
		return primitive.NilObjectID, errors.New("booking slotId and email are required")
	}

	booking.Reference = uuid.NewString()
	if booking.Date.IsZero() {
		booking.Date = time.Now().UTC()
	}

	bookingID, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}
	metrics.BookingsCreated.Inc()

	if slotID, convErr := primitive.ObjectIDFromHex(booking.SlotID); convErr == nil {
		if err := s.slotRepo.AddAttendee(ctx, slotID, domain.Attendee{
			Name:  booking.Name,
			Email: booking.Email,
		}); err != nil {
			metrics.WorkflowStepFailures.WithLabelValues("booking", "slot_attendee").Inc()
			log.Printf("ERROR: appending attendee to slot %s: %v", booking.SlotID, err)
		}
	} else {
		metrics.WorkflowStepFailures.WithLabelValues("booking", "slot_attendee").Inc()
		log.Printf("ERROR: booking %s carries malformed slotId %q", booking.Reference, booking.SlotID)
	}

	if _, err := s.cartRepo.DeleteBySlotID(ctx, booking.SlotID); err != nil {
		metrics.WorkflowStepFailures.WithLabelValues("booking", "cart_delete").Inc()
		log.Printf("ERROR: clearing cart for slot %s: %v", booking.SlotID, err)
	}

	if _, err := s.classRepo.IncrementBookings(ctx, booking.Classes); err != nil {
		metrics.WorkflowStepFailures.WithLabelValues("booking", "class_counters").Inc()
		log.Printf("ERROR: incrementing booking counters for %v: %v", booking.Classes, err)
	}

	return bookingID, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// BookedTrainers projects the trainer ids out of the buyer's bookings
// and fetches the matching trainer records in one $in query.
func (s *bookingService) BookedTrainers(ctx context.Context, email string) ([]domain.Trainer, error) {
	bookings, err := s.bookingRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(bookings))
	seen := make(map[primitive.ObjectID]struct{}, len(bookings))
	for _, b := range bookings {
		id, err := primitive.ObjectIDFromHex(b.TrainerID)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return s.trainerRepo.GetByIDs(ctx, ids)
}
