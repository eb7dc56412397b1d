package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

// BaseMongoRepository provides the read operations the concrete
// repositories share. This service never writes to the document store, so
// the surface stops at queries.
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

func NewBaseMongoRepository[T any](db mongo.Database, collection string) *BaseMongoRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

func (r *BaseMongoRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.GetByFilter(ctx, bson.D{})
}

func (r *BaseMongoRepository[T]) GetByFilter(ctx context.Context, filter interface{}) ([]T, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.collection, err)
	}

	var entities []T
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", r.collection, err)
	}
	return entities, nil
}

// GetOneByFilter returns (nil, nil) when no document matches, so callers
// can distinguish "absent" from an I/O failure.
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	coll := r.db.Collection(r.collection)

	var entity T
	err := coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query %s: %w", r.collection, err)
	}
	return &entity, nil
}

func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	coll := r.db.Collection(r.collection)
	return coll.CountDocuments(ctx, filter)
}
