package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

type contentUsecase struct {
	userRepo  domain.UserRepository
	eventRepo domain.EventRepository
	index     domain.VectorIndex
	embedder  domain.Embedder
	logger    *zap.Logger
	timeout   time.Duration
}

func NewContentUsecase(
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	index domain.VectorIndex,
	embedder domain.Embedder,
	logger *zap.Logger,
	timeout time.Duration,
) domain.ContentRecommender {
	return &contentUsecase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		index:     index,
		embedder:  embedder,
		logger:    logger,
		timeout:   timeout,
	}
}

// buildUserGenome synthesizes the preference text for a user: interests
// repeated to dominate, followed by achievement titles and descriptions.
func buildUserGenome(user *domain.User) string {
	interests := strings.Join(user.Profile.AreasOfInterest, " ")

	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteString(interests)
		b.WriteString(" ")
	}
	for _, achievement := range user.Profile.PastAchievements {
		b.WriteString(achievement.Title)
		b.WriteString(" ")
		b.WriteString(achievement.Description)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func (uc *contentUsecase) search(ctx context.Context, userID string, k int) ([]domain.SearchHit, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	vector, err := uc.embedder.Embed(ctx, buildUserGenome(user))
	if err != nil {
		return nil, err
	}

	return uc.index.Search(ctx, vector, k)
}

func (uc *contentUsecase) Recommend(ctx context.Context, userID string, topK int) ([]domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	hits, err := uc.search(ctx, userID, topK)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(hits))
	for _, hit := range hits {
		candidates = append(candidates, domain.Candidate{
			EventID: hit.EventID,
			Score:   float64(hit.Score),
		})
	}
	return candidates, nil
}

// RecommendEvents hydrates the nearest events for the content-based
// endpoint. Hits whose event no longer exists are skipped.
func (uc *contentUsecase) RecommendEvents(ctx context.Context, userID string, topK int) ([]domain.ScoredEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	hits, err := uc.search(ctx, userID, topK)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.EventID)
	}
	events, err := uc.eventRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Event, len(events))
	for _, event := range events {
		byID[event.ID.Hex()] = event
	}

	ranked := make([]domain.ScoredEvent, 0, len(hits))
	for _, hit := range hits {
		event, ok := byID[hit.EventID]
		if !ok {
			uc.logger.Debug("skipping stale index hit", zap.String("eventId", hit.EventID))
			continue
		}
		ranked = append(ranked, domain.ScoredEvent{
			Event: event,
			Score: float64(hit.Score),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}
