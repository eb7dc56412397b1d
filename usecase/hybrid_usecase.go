package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

type hybridUsecase struct {
	content       domain.Recommender
	collaborative domain.Recommender
	demographic   domain.Recommender
	eventRepo     domain.EventRepository
	logger        *zap.Logger
	timeout       time.Duration
}

func NewHybridUsecase(
	content domain.Recommender,
	collaborative domain.Recommender,
	demographic domain.Recommender,
	eventRepo domain.EventRepository,
	logger *zap.Logger,
	timeout time.Duration,
) domain.HybridRecommender {
	return &hybridUsecase{
		content:       content,
		collaborative: collaborative,
		demographic:   demographic,
		eventRepo:     eventRepo,
		logger:        logger,
		timeout:       timeout,
	}
}

// candidatesFrom runs one strategy over the oversized candidate pool. A
// failing strategy contributes zero candidates; it never sinks the fusion.
func (uc *hybridUsecase) candidatesFrom(ctx context.Context, strategy domain.Recommender, name, userID string, pool int) []domain.Candidate {
	candidates, err := strategy.Recommend(ctx, userID, pool)
	if err != nil {
		uc.logger.Warn("recommender failed, contributing no candidates",
			zap.String("strategy", name),
			zap.String("userId", userID),
			zap.Error(err))
		return nil
	}
	return candidates
}

// Recommend fans out to the three strategies with a 2×topK pool, merges
// their candidates into one weighted score per event, and hydrates the
// winners. The content similarity is inverted (1 − s) so a closer match
// contributes more; the value is intentionally not clamped.
func (uc *hybridUsecase) Recommend(ctx context.Context, userID string, topK int) ([]domain.ScoredEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	pool := topK * 2
	contentHits := uc.candidatesFrom(ctx, uc.content, "content", userID, pool)
	collaborativeHits := uc.candidatesFrom(ctx, uc.collaborative, "collaborative", userID, pool)
	demographicHits := uc.candidatesFrom(ctx, uc.demographic, "demographic", userID, pool)

	scores := make(map[string]float64)
	order := make([]string, 0, len(contentHits)+len(collaborativeHits)+len(demographicHits))
	accumulate := func(eventID string, contribution float64) {
		if _, seen := scores[eventID]; !seen {
			order = append(order, eventID)
		}
		scores[eventID] += contribution
	}

	for _, hit := range contentHits {
		accumulate(hit.EventID, domain.WeightContent*(1-hit.Score))
	}
	for _, hit := range collaborativeHits {
		accumulate(hit.EventID, domain.WeightCollaborative)
	}
	for _, hit := range demographicHits {
		accumulate(hit.EventID, domain.WeightDemographic)
	}
	if len(order) == 0 {
		return nil, nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	if len(order) > topK {
		order = order[:topK]
	}

	events, err := uc.eventRepo.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Event, len(events))
	for _, event := range events {
		byID[event.ID.Hex()] = event
	}

	ranked := make([]domain.ScoredEvent, 0, len(order))
	for _, eventID := range order {
		event, ok := byID[eventID]
		if !ok {
			uc.logger.Debug("dropping stale fused candidate", zap.String("eventId", eventID))
			continue
		}
		ranked = append(ranked, domain.ScoredEvent{
			Event: event,
			Score: scores[eventID],
		})
	}
	return ranked, nil
}
