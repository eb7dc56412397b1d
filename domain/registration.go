package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Registration struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	EventID          primitive.ObjectID `bson:"eventId" json:"eventId"`
	StudentID        primitive.ObjectID `bson:"studentId" json:"studentId"`
	StudentTeamID    primitive.ObjectID `bson:"studentTeamId,omitempty" json:"studentTeamId,omitempty"`
	RegistrationType string             `bson:"registrationType" json:"registrationType"`
	Status           string             `bson:"status" json:"status"`
}

type RegistrationRepository interface {
	GetAll(ctx context.Context) ([]Registration, error)
	GetByStudentIDs(ctx context.Context, studentIDs []primitive.ObjectID) ([]Registration, error)
}
