package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

// Namespace for deriving point ids from event ids. Deterministic ids make
// incremental adds true upserts, so the index holds at most one point per
// event between full rebuilds.
var pointNamespace = uuid.MustParse("6b1d40ae-5f8e-4c94-9d76-2f41c16c9a1b")

const payloadEventID = "event_id"

type vectorIndexRepository struct {
	client     *qdrant.Client
	collection string
}

func NewVectorIndexRepository(client *qdrant.Client, collection string) domain.VectorIndex {
	return &vectorIndexRepository{
		client:     client,
		collection: collection,
	}
}

func (r *vectorIndexRepository) CreateIndex(ctx context.Context, dimension int) error {
	exists, err := r.client.CollectionExists(ctx, r.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", r.collection, err)
	}
	if exists {
		return nil
	}

	err = r.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", r.collection, err)
	}
	return nil
}

func (r *vectorIndexRepository) DeleteIndex(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", r.collection, err)
	}
	if !exists {
		return nil
	}

	if err := r.client.DeleteCollection(ctx, r.collection); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", r.collection, err)
	}
	return nil
}

func (r *vectorIndexRepository) Upsert(ctx context.Context, points []domain.VectorPoint) error {
	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		pointID := uuid.NewSHA1(pointNamespace, []byte(p.EventID))
		qdrantPoints = append(qdrantPoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID.String()),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(map[string]any{payloadEventID: p.EventID}),
		})
	}

	_, err := r.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.collection,
		Points:         qdrantPoints,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert %d points: %w", len(qdrantPoints), err)
	}
	return nil
}

func (r *vectorIndexRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	_, err := r.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: r.collection,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(payloadEventID, eventID),
			},
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to delete points for event %s: %w", eventID, err)
	}
	return nil
}

func (r *vectorIndexRepository) Search(ctx context.Context, vector []float32, k int) ([]domain.SearchHit, error) {
	result, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", r.collection, err)
	}

	hits := make([]domain.SearchHit, 0, len(result))
	for _, point := range result {
		eventID := point.Payload[payloadEventID].GetStringValue()
		if eventID == "" {
			continue
		}
		hits = append(hits, domain.SearchHit{
			EventID: eventID,
			Score:   point.Score,
		})
	}
	return hits, nil
}
