package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

type studentTeamRepository struct {
	*BaseMongoRepository[domain.StudentTeam]
}

func NewStudentTeamRepository(db mongo.Database) domain.StudentTeamRepository {
	return &studentTeamRepository{
		BaseMongoRepository: NewBaseMongoRepository[domain.StudentTeam](db, domain.CollectionStudentTeams),
	}
}

func (r *studentTeamRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.StudentTeam, error) {
	return r.GetOneByFilter(ctx, bson.M{"_id": id})
}
