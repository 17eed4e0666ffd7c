package service

import (
	"context"
	"errors"
	"log"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/metrics"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrSlotNotFound = errors.New("slot not found")

// SlotService covers the slot creation/deletion workflows and slot
// reads. Creation fans the trainer summary out to every covered class
// and mirrors the slot onto the trainer record; deletion undoes the
// mirror. None of it is transactional.
type SlotService interface {
	CreateSlot(ctx context.Context, slot *domain.Slot) (primitive.ObjectID, error)
	DeleteSlot(ctx context.Context, id primitive.ObjectID) error
	GetSlot(ctx context.Context, id primitive.ObjectID) (*domain.Slot, error)
	GetSlotsByTrainerEmail(ctx context.Context, email string) ([]domain.Slot, error)
}

type slotService struct {
	slotRepo    repository.SlotRepository
	classRepo   repository.ClassRepository
	trainerRepo repository.TrainerRepository
}

// NewSlotService creates a new instance of slotService.
func NewSlotService(
	slotRepo repository.SlotRepository,
	classRepo repository.ClassRepository,
	trainerRepo repository.TrainerRepository,
) SlotService {
	return &slotService{
		slotRepo:    slotRepo,
		classRepo:   classRepo,
		trainerRepo: trainerRepo,
	}
}

// CreateSlot runs the slot creation sequence: push the trainer summary
// onto every class the slot covers, insert the slot, mirror the slot
// onto the trainer's availableSlots. Later steps proceed even if an
// earlier fan-out partially applied; failures are counted and logged,
// never rolled back.
func (s *slotService) CreateSlot(ctx context.Context, slot *domain.Slot) (primitive.ObjectID, error) {
	if slot.SlotName == "" || slot.Trainer.ID.IsZero() {
		return primitive.NilObjectID, errors.New("slot name and trainer are required")
	}

	if _, err := s.classRepo.AddTrainerToClasses(ctx, slot.ClassesIncludes, domain.ClassTrainer{
		ID:    slot.Trainer.ID,
		Name:  slot.Trainer.Name,
		Email: slot.Trainer.Email,
		Photo: slot.Trainer.Photo,
	}); err != nil {
		metrics.WorkflowStepFailures.WithLabelValues("slot_create", "class_fanout").Inc()
		log.Printf("ERROR: adding trainer %s to classes %v: %v", slot.Trainer.Email, slot.ClassesIncludes, err)
	}

	slotID, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		// Classes may already carry the trainer summary at this point;
		// that partial state stays (see the workflow notes in DESIGN.md).
		metrics.WorkflowStepFailures.WithLabelValues("slot_create", "slot_insert").Inc()
		return primitive.NilObjectID, err
	}

	summary := domain.SlotSummary{
		SlotID:          slotID,
		SlotName:        slot.SlotName,
		SlotDays:        slot.SlotDays,
		SlotTime:        slot.SlotTime,
		ClassesIncludes: slot.ClassesIncludes,
	}
	if err := s.trainerRepo.PushAvailableSlot(ctx, slot.Trainer.ID, summary); err != nil {
		metrics.WorkflowStepFailures.WithLabelValues("slot_create", "trainer_mirror").Inc()
		log.Printf("ERROR: mirroring slot %s onto trainer %s: %v", slotID.Hex(), slot.Trainer.ID.Hex(), err)
	}

	return slotID, nil
}

// DeleteSlot removes the slot and pulls the matching availableSlots
// entry from whichever trainer holds it. A trainer that no longer
// references the slot makes the pull a no-op.
func (s *slotService) DeleteSlot(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.slotRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSlotNotFound
	}

	if err := s.trainerRepo.PullAvailableSlot(ctx, id); err != nil {
		metrics.WorkflowStepFailures.WithLabelValues("slot_delete", "trainer_pull").Inc()
		log.Printf("ERROR: pulling slot %s from trainer availableSlots: %v", id.Hex(), err)
	}
	return nil
}

func (s *slotService) GetSlot(ctx context.Context, id primitive.ObjectID) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (s *slotService) GetSlotsByTrainerEmail(ctx context.Context, email string) ([]domain.Slot, error) {
	return s.slotRepo.GetByTrainerEmail(ctx, email)
}
