package domain

import "context"

// VectorPoint is one event embedding headed for the index.
type VectorPoint struct {
	EventID string
	Vector  []float32
}

// SearchHit is one nearest-neighbor result. Score is the raw
// index-reported similarity (higher = more similar).
type SearchHit struct {
	EventID string
	Score   float32
}

// VectorIndex is the narrow contract over the external nearest-neighbor
// service. DeleteIndex must treat a missing index as a no-op.
type VectorIndex interface {
	CreateIndex(ctx context.Context, dimension int) error
	DeleteIndex(ctx context.Context) error
	Upsert(ctx context.Context, points []VectorPoint) error
	DeleteByEvent(ctx context.Context, eventID string) error
	Search(ctx context.Context, vector []float32, k int) ([]SearchHit, error)
}
