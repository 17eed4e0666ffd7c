package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// Application status values stored on the user while a trainer
// application is in flight.
const (
	StatusPending = "pending"
)

// User represents an account in the system. Role starts as member and is
// moved by the promotion/demotion workflows; Status tracks an in-flight
// trainer application.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"` // Should be unique
	Photo  string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role   Role               `bson:"role" json:"role"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`

	// Optional local credential. Accounts created through an external
	// identity provider have no password at all.
	PasswordHash string `bson:"passwordHash,omitempty" json:"-"` // Never expose this via JSON

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
