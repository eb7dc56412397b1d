package domain

import "context"

// Contribution weights of the three strategies inside hybrid fusion. They
// are independent contribution weights, not a probability mixture.
const (
	WeightContent       = 0.6
	WeightCollaborative = 0.3
	WeightDemographic   = 0.1
)

const DefaultTopK = 5

// Candidate is one ranked suggestion from a single strategy. Score carries
// the strategy's raw signal: index similarity for content-based, summed
// neighbor interaction strength for collaborative, neighbor registration
// count for demographic.
type Candidate struct {
	EventID string  `json:"eventId"`
	Score   float64 `json:"score"`
}

// ScoredEvent is a hydrated recommendation as returned to clients.
type ScoredEvent struct {
	Event Event   `json:"event"`
	Score float64 `json:"score"`
}

// Recommender is the shape the three strategies share; hybrid fusion
// composes three of them.
type Recommender interface {
	Recommend(ctx context.Context, userID string, topK int) ([]Candidate, error)
}

// ContentRecommender additionally hydrates its hits for the
// content-based endpoint.
type ContentRecommender interface {
	Recommender
	RecommendEvents(ctx context.Context, userID string, topK int) ([]ScoredEvent, error)
}

type HybridRecommender interface {
	Recommend(ctx context.Context, userID string, topK int) ([]ScoredEvent, error)
}

// IndexMaintainer is the vector-index lifecycle consumed by the routing
// layer and the background scheduler.
type IndexMaintainer interface {
	RebuildIndex(ctx context.Context) error
	AddEvent(ctx context.Context, eventID string) error
	RemoveEvent(ctx context.Context, eventID string) error
}
