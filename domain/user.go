package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Achievement struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Proof       string `bson:"proof,omitempty" json:"proof,omitempty"`
}

type UserProfile struct {
	Name             string        `bson:"name" json:"name"`
	AreasOfInterest  []string      `bson:"areasOfInterest" json:"areasOfInterest"`
	PastAchievements []Achievement `bson:"pastAchievements" json:"pastAchievements"`
}

type User struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Email   string             `bson:"email" json:"email"`
	Role    string             `bson:"role" json:"role"`
	College primitive.ObjectID `bson:"college,omitempty" json:"college,omitempty"`
	Profile UserProfile        `bson:"profile" json:"profile"`
}

// DemographicProfile is the projection produced by joining a user with its
// college record. It carries exactly the fields the demographic recommender
// embeds.
type DemographicProfile struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	AreasOfInterest []string           `bson:"areasOfInterest" json:"areasOfInterest"`
	CollegeName     string             `bson:"collegeName" json:"collegeName"`
	CollegeCode     string             `bson:"collegeCode" json:"collegeCode"`
}

// UserRepository reads the users collection. Lookups by identifier return
// (nil, nil) when no document matches, so callers can treat an unknown user
// as an empty recommendation rather than an error.
type UserRepository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetAllWithColleges(ctx context.Context) ([]DemographicProfile, error)
}
