package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventStatusPublished = "published"

type EventRating struct {
	By     primitive.ObjectID `bson:"by" json:"by"`
	Rating float64            `bson:"rating" json:"rating"`
	Review string             `bson:"review,omitempty" json:"review,omitempty"`
}

type Event struct {
	ID            primitive.ObjectID   `bson:"_id" json:"id"`
	Title         string               `bson:"title" json:"title"`
	Description   string               `bson:"description" json:"description"`
	CategoryTags  []string             `bson:"categoryTags" json:"categoryTags"`
	Status        string               `bson:"status" json:"status"`
	Ratings       []EventRating        `bson:"ratings,omitempty" json:"ratings,omitempty"`
	Registrations []primitive.ObjectID `bson:"registrations,omitempty" json:"registrations,omitempty"`
}

// EventRepository reads the events collection. GetByID returns (nil, nil)
// for unknown or malformed identifiers; GetByIDs silently drops them.
type EventRepository interface {
	GetPublished(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByIDs(ctx context.Context, ids []string) ([]Event, error)
}
