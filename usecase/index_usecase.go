package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

type indexUsecase struct {
	eventRepo domain.EventRepository
	index     domain.VectorIndex
	embedder  domain.Embedder
	logger    *zap.Logger
	timeout   time.Duration
}

func NewIndexUsecase(
	eventRepo domain.EventRepository,
	index domain.VectorIndex,
	embedder domain.Embedder,
	logger *zap.Logger,
	timeout time.Duration,
) domain.IndexMaintainer {
	return &indexUsecase{
		eventRepo: eventRepo,
		index:     index,
		embedder:  embedder,
		logger:    logger,
		timeout:   timeout,
	}
}

// buildEventGenome synthesizes the text embedded for an event. Category
// tags are repeated to amplify their weight relative to free text.
func buildEventGenome(event *domain.Event) string {
	tags := strings.Join(event.CategoryTags, " ")

	enhanced := make([]string, 0, len(event.CategoryTags)*3)
	for i := 0; i < 3; i++ {
		enhanced = append(enhanced, event.CategoryTags...)
	}
	enhancedTags := strings.Join(enhanced, " ")

	return fmt.Sprintf("%s. %s. Categories: %s. Focus Areas: %s.",
		event.Title, event.Description, tags, enhancedTags)
}

// RebuildIndex drops the index, recreates it, and re-embeds every
// published event in one bulk upsert.
func (uc *indexUsecase) RebuildIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.index.DeleteIndex(ctx); err != nil {
		return err
	}
	if err := uc.index.CreateIndex(ctx, uc.embedder.Dimension()); err != nil {
		return err
	}

	events, err := uc.eventRepo.GetPublished(ctx)
	if err != nil {
		return err
	}

	points := make([]domain.VectorPoint, 0, len(events))
	for i := range events {
		vector, err := uc.embedder.Embed(ctx, buildEventGenome(&events[i]))
		if err != nil {
			return fmt.Errorf("failed to embed event %s: %w", events[i].ID.Hex(), err)
		}
		points = append(points, domain.VectorPoint{
			EventID: events[i].ID.Hex(),
			Vector:  vector,
		})
	}

	if err := uc.index.Upsert(ctx, points); err != nil {
		return err
	}

	uc.logger.Info("rebuilt vector index", zap.Int("events", len(points)))
	return nil
}

// AddEvent embeds one event and upserts its point. A missing event is a
// stale reference and is skipped without error.
func (uc *indexUsecase) AddEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		uc.logger.Warn("no event found for index add", zap.String("eventId", eventID))
		return nil
	}

	vector, err := uc.embedder.Embed(ctx, buildEventGenome(event))
	if err != nil {
		return fmt.Errorf("failed to embed event %s: %w", eventID, err)
	}

	return uc.index.Upsert(ctx, []domain.VectorPoint{{
		EventID: eventID,
		Vector:  vector,
	}})
}

// RemoveEvent deletes every index point whose payload references the
// given event.
func (uc *indexUsecase) RemoveEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.index.DeleteByEvent(ctx, eventID)
}
