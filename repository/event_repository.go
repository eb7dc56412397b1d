package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

type eventRepository struct {
	*BaseMongoRepository[domain.Event]
}

func NewEventRepository(db mongo.Database) domain.EventRepository {
	return &eventRepository{
		BaseMongoRepository: NewBaseMongoRepository[domain.Event](db, domain.CollectionEvents),
	}
}

func (r *eventRepository) GetPublished(ctx context.Context) ([]domain.Event, error) {
	return r.GetByFilter(ctx, bson.M{"status": domain.EventStatusPublished})
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.GetOneByFilter(ctx, bson.M{"_id": oid})
}

func (r *eventRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Event, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}
	return r.GetByFilter(ctx, bson.M{"_id": bson.M{"$in": oids}})
}
