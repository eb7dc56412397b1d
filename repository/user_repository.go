package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

type userRepository struct {
	*BaseMongoRepository[domain.User]
	db mongo.Database
}

func NewUserRepository(db mongo.Database) domain.UserRepository {
	return &userRepository{
		BaseMongoRepository: NewBaseMongoRepository[domain.User](db, domain.CollectionUsers),
		db:                  db,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed id behaves like an unknown user
		return nil, nil
	}
	return r.GetOneByFilter(ctx, bson.M{"_id": oid})
}

// GetAllWithColleges joins every user with its college record and projects
// the demographic feature fields. Users without a resolvable college keep
// empty name/code.
func (r *userRepository) GetAllWithColleges(ctx context.Context) ([]domain.DemographicProfile, error) {
	coll := r.db.Collection(domain.CollectionUsers)

	pipeline := []bson.D{
		{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: domain.CollectionColleges},
				{Key: "localField", Value: "college"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "collegeDoc"},
			}},
		},
		{
			{Key: "$unwind", Value: bson.D{
				{Key: "path", Value: "$collegeDoc"},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			}},
		},
		{
			{Key: "$project", Value: bson.D{
				{Key: "areasOfInterest", Value: "$profile.areasOfInterest"},
				{Key: "collegeName", Value: "$collegeDoc.name"},
				{Key: "collegeCode", Value: "$collegeDoc.code"},
			}},
		},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to join users with colleges: %w", err)
	}

	var profiles []domain.DemographicProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode demographic profiles: %w", err)
	}
	return profiles, nil
}
