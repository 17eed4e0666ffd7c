package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassTrainer is the denormalized trainer summary copied onto a class
// when the trainer opens a slot covering it. The copy is kept consistent
// with the trainers collection only by the slot workflow.
type ClassTrainer struct {
	ID    primitive.ObjectID `bson:"id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Class is a catalog entry. NumberOfBookings only ever increases, and
// only through the booking workflow.
type Class struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	NumberOfBookings int64              `bson:"numberOfBookings" json:"numberOfBookings"`
	Trainers         []ClassTrainer     `bson:"trainers,omitempty" json:"trainers,omitempty"`
}
