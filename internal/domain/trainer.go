package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerApplication is the intake record a member submits to become a
// trainer. It lives in its own collection only while the matching user
// is pending; the promotion workflow moves its payload into the
// trainers collection and removes it.
type TrainerApplication struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Age             int                `bson:"age,omitempty" json:"age,omitempty"`
	Photo           string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Background      string             `bson:"background,omitempty" json:"background,omitempty"`
	Specializations []string           `bson:"specializations,omitempty" json:"specializations,omitempty"`
	AvailableDays   []string           `bson:"availableDays,omitempty" json:"availableDays,omitempty"`
	AvailableTime   string             `bson:"availableTime,omitempty" json:"availableTime,omitempty"`
	AppliedAt       time.Time          `bson:"appliedAt" json:"appliedAt"`
}

// SlotSummary is the slot excerpt pushed onto Trainer.AvailableSlots by
// the slot creation workflow. SlotID points at the slots collection.
type SlotSummary struct {
	SlotID          primitive.ObjectID `bson:"slotId" json:"slotId"`
	SlotName        string             `bson:"slotName" json:"slotName"`
	SlotDays        []string           `bson:"slotDays,omitempty" json:"slotDays,omitempty"`
	SlotTime        string             `bson:"slotTime,omitempty" json:"slotTime,omitempty"`
	ClassesIncludes []string           `bson:"classesIncludes,omitempty" json:"classesIncludes,omitempty"`
}

// Trainer is created only by the promotion workflow and removed only by
// demotion. AvailableSlots mirrors the slots collection; the slot
// workflows keep the two in step.
type Trainer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Age             int                `bson:"age,omitempty" json:"age,omitempty"`
	Photo           string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Background      string             `bson:"background,omitempty" json:"background,omitempty"`
	Specializations []string           `bson:"specializations,omitempty" json:"specializations,omitempty"`
	AvailableDays   []string           `bson:"availableDays,omitempty" json:"availableDays,omitempty"`
	AvailableTime   string             `bson:"availableTime,omitempty" json:"availableTime,omitempty"`
	AvailableSlots  []SlotSummary      `bson:"availableSlots,omitempty" json:"availableSlots,omitempty"`
	PromotedAt      time.Time          `bson:"promotedAt" json:"promotedAt"`
}
