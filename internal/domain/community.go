package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a community/forum entry. Vote counters move only through the
// explicit upvote/downvote increments.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content,omitempty" json:"content,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	AuthorName  string             `bson:"authorName,omitempty" json:"authorName,omitempty"`
	AuthorEmail string             `bson:"authorEmail,omitempty" json:"authorEmail,omitempty"`
	AuthorRole  string             `bson:"authorRole,omitempty" json:"authorRole,omitempty"`
	Upvote      int64              `bson:"upvote" json:"upvote"`
	Downvote    int64              `bson:"downvote" json:"downvote"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// Review is free-form member feedback shown on the landing page.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Feedback  string             `bson:"feedback" json:"feedback"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Email        string             `bson:"email" json:"email"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
}
