package service

import (
	"context"
	"testing"

	"fitbelievers/gym-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newSlotFixture() (*fakeSlotRepo, *fakeClassRepo, *fakeTrainerRepo, SlotService) {
	slots := &fakeSlotRepo{}
	classes := &fakeClassRepo{}
	trainers := &fakeTrainerRepo{}
	svc := NewSlotService(slots, classes, trainers)
	return slots, classes, trainers, svc
}

func TestCreateSlotFanOut(t *testing.T) {
	slots, classes, trainers, svc := newSlotFixture()
	ctx := context.Background()

	trainerID, err := trainers.Create(ctx, &domain.Trainer{Name: "Max", Email: "max@gym.io"})
	require.NoError(t, err)
	classes.classes = append(classes.classes,
		domain.Class{ID: primitive.NewObjectID(), Name: "Strength"},
		domain.Class{ID: primitive.NewObjectID(), Name: "Cardio"},
		domain.Class{ID: primitive.NewObjectID(), Name: "Yoga"},
	)

	slotID, err := svc.CreateSlot(ctx, &domain.Slot{
		Trainer:         domain.SlotTrainer{ID: trainerID, Name: "Max", Email: "max@gym.io"},
		SlotName:        "Evening Mix",
		SlotDays:        []string{"Mon", "Wed"},
		SlotTime:        "18:00",
		ClassesIncludes: []string{"Strength", "Cardio"},
	})
	require.NoError(t, err)
	assert.False(t, slotID.IsZero())
	assert.Len(t, slots.slots, 1)

	// Only the covered classes gained the trainer summary.
	require.Len(t, classes.classes[0].Trainers, 1)
	assert.Equal(t, "max@gym.io", classes.classes[0].Trainers[0].Email)
	assert.Len(t, classes.classes[1].Trainers, 1)
	assert.Empty(t, classes.classes[2].Trainers)

	// The trainer mirrors the slot.
	trainer, err := trainers.GetByID(ctx, trainerID)
	require.NoError(t, err)
	require.Len(t, trainer.AvailableSlots, 1)
	assert.Equal(t, slotID, trainer.AvailableSlots[0].SlotID)
	assert.Equal(t, "Evening Mix", trainer.AvailableSlots[0].SlotName)
}

func TestCreateSlotRequiresNameAndTrainer(t *testing.T) {
	_, _, _, svc := newSlotFixture()

	_, err := svc.CreateSlot(context.Background(), &domain.Slot{SlotName: "No Trainer"})
	assert.Error(t, err)

	_, err = svc.CreateSlot(context.Background(), &domain.Slot{
		Trainer: domain.SlotTrainer{ID: primitive.NewObjectID()},
	})
	assert.Error(t, err)
}

func TestDeleteSlotPullsTrainerMirror(t *testing.T) {
	slots, classes, trainers, svc := newSlotFixture()
	ctx := context.Background()

	trainerID, err := trainers.Create(ctx, &domain.Trainer{Email: "max@gym.io"})
	require.NoError(t, err)
	classes.classes = append(classes.classes, domain.Class{ID: primitive.NewObjectID(), Name: "Strength"})

	slotID, err := svc.CreateSlot(ctx, &domain.Slot{
		Trainer:         domain.SlotTrainer{ID: trainerID, Email: "max@gym.io"},
		SlotName:        "Morning",
		ClassesIncludes: []string{"Strength"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(ctx, slotID))

	assert.Empty(t, slots.slots)
	trainer, err := trainers.GetByID(ctx, trainerID)
	require.NoError(t, err)
	assert.Empty(t, trainer.AvailableSlots)

	// The class keeps its trainer summary; deletion does not unwind it.
	assert.Len(t, classes.classes[0].Trainers, 1)
}

func TestDeleteSlotUnknown(t *testing.T) {
	_, _, _, svc := newSlotFixture()

	err := svc.DeleteSlot(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestGetSlotsByTrainerEmail(t *testing.T) {
	slots, _, _, svc := newSlotFixture()
	ctx := context.Background()

	_, err := slots.Create(ctx, &domain.Slot{SlotName: "A", Trainer: domain.SlotTrainer{Email: "max@gym.io"}})
	require.NoError(t, err)
	_, err = slots.Create(ctx, &domain.Slot{SlotName: "B", Trainer: domain.SlotTrainer{Email: "other@gym.io"}})
	require.NoError(t, err)

	got, err := svc.GetSlotsByTrainerEmail(ctx, "max@gym.io")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].SlotName)
}
