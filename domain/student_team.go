package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TeamMemberApproved = "Approved"

type TeamMember struct {
	Member primitive.ObjectID `bson:"member" json:"member"`
	Status string             `bson:"status" json:"status"`
}

type StudentTeam struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	TeamName string             `bson:"teamName" json:"teamName"`
	Leader   primitive.ObjectID `bson:"leader" json:"leader"`
	Members  []TeamMember       `bson:"members" json:"members"`
}

// StudentTeamRepository resolves team registrations into member identities.
// GetByID returns (nil, nil) when the team no longer exists.
type StudentTeamRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*StudentTeam, error)
}
