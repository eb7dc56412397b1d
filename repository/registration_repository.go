package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

type registrationRepository struct {
	*BaseMongoRepository[domain.Registration]
}

func NewRegistrationRepository(db mongo.Database) domain.RegistrationRepository {
	return &registrationRepository{
		BaseMongoRepository: NewBaseMongoRepository[domain.Registration](db, domain.CollectionRegistrations),
	}
}

func (r *registrationRepository) GetByStudentIDs(ctx context.Context, studentIDs []primitive.ObjectID) ([]domain.Registration, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	return r.GetByFilter(ctx, bson.M{"studentId": bson.M{"$in": studentIDs}})
}
