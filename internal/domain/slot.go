package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotTrainer identifies the trainer offering a slot. The ID references
// the trainers collection; name/email/photo are copies used for class
// summaries.
type SlotTrainer struct {
	ID    primitive.ObjectID `bson:"id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Attendee is one {name,email} entry in Slot.BookedBy, appended by the
// booking workflow.
type Attendee struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// Slot is a bookable trainer time offering tied to one or more classes
// by name. It exists only while its owning trainer does; deleting it
// must also pull the matching summary from the trainer's availableSlots.
type Slot struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Trainer         SlotTrainer        `bson:"trainer" json:"trainer"`
	SlotName        string             `bson:"slotName" json:"slotName"`
	SlotDays        []string           `bson:"slotDays,omitempty" json:"slotDays,omitempty"`
	SlotTime        string             `bson:"slotTime,omitempty" json:"slotTime,omitempty"`
	ClassesIncludes []string           `bson:"classesIncludes,omitempty" json:"classesIncludes,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	BookedBy        []Attendee         `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"`
}
