package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a transient pre-booking hold, one active entry per slot.
// It is keyed by SlotID (hex string, as sent by the client) and removed
// when the matching booking lands.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SlotID    string             `bson:"slotId" json:"slotId"`
	SlotName  string             `bson:"slotName,omitempty" json:"slotName,omitempty"`
	TrainerID string             `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Classes   []string           `bson:"classes,omitempty" json:"classes,omitempty"`
}

// Booking is a paid reservation of a slot. Creating one has side
// effects on the slot, the cart and every covered class, all best
// effort (see the booking workflow).
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference string             `bson:"reference" json:"reference"` // receipt handle, generated server side
	SlotID    string             `bson:"slotId" json:"slotId"`
	TrainerID string             `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Price     float64            `bson:"price" json:"price"`
	Classes   []string           `bson:"classes,omitempty" json:"classes,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
}
