package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

// neighborCount is how many similar users feed the collaborative and
// demographic strategies.
const neighborCount = 5

type collaborativeUsecase struct {
	builder *InteractionMatrixBuilder
	logger  *zap.Logger
	timeout time.Duration
}

func NewCollaborativeUsecase(builder *InteractionMatrixBuilder, logger *zap.Logger, timeout time.Duration) domain.Recommender {
	return &collaborativeUsecase{
		builder: builder,
		logger:  logger,
		timeout: timeout,
	}
}

// Recommend projects the interactions of the target user's most similar
// neighbors into event scores. Degenerate inputs (no data, unknown user,
// a single user, an uninformative similarity row) yield an empty result.
func (uc *collaborativeUsecase) Recommend(ctx context.Context, userID string, topK int) ([]domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	matrix, err := uc.builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	if matrix == nil {
		return nil, nil
	}

	targetIdx, ok := matrix.UserIndex[userID]
	if !ok {
		return nil, nil
	}
	if len(matrix.Events) == 0 || len(matrix.Users) < 2 {
		return nil, nil
	}

	similarities := cosineSimilarityMatrix(matrix.Cells)
	targetRow := similarities[targetIdx]

	informative := false
	for _, s := range targetRow {
		if s != 0 {
			informative = true
			break
		}
	}
	if !informative {
		uc.logger.Debug("no informative neighbors", zap.String("userId", userID))
		return nil, nil
	}

	neighbors := topNeighbors(targetRow, targetIdx, neighborCount)

	eventScores := make([]float64, len(matrix.Events))
	for _, neighborIdx := range neighbors {
		for j, v := range matrix.Cells[neighborIdx] {
			eventScores[j] += v
		}
	}

	// Suppress events the target user already interacted with.
	for j, v := range matrix.Cells[targetIdx] {
		eventScores[j] *= 1 - v
	}

	candidates := make([]domain.Candidate, 0, topK)
	for _, j := range argsortDescending(eventScores) {
		if eventScores[j] <= 0 {
			break
		}
		candidates = append(candidates, domain.Candidate{
			EventID: matrix.Events[j].ID.Hex(),
			Score:   eventScores[j],
		})
		if len(candidates) == topK {
			break
		}
	}
	return candidates, nil
}
