package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

type demographicUsecase struct {
	userRepo         domain.UserRepository
	registrationRepo domain.RegistrationRepository
	embedder         domain.Embedder
	logger           *zap.Logger
	timeout          time.Duration
}

func NewDemographicUsecase(
	userRepo domain.UserRepository,
	registrationRepo domain.RegistrationRepository,
	embedder domain.Embedder,
	logger *zap.Logger,
	timeout time.Duration,
) domain.Recommender {
	return &demographicUsecase{
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		embedder:         embedder,
		logger:           logger,
		timeout:          timeout,
	}
}

func demographicFeatures(profile *domain.DemographicProfile) string {
	parts := make([]string, 0, len(profile.AreasOfInterest)+2)
	parts = append(parts, profile.CollegeName, profile.CollegeCode)
	parts = append(parts, profile.AreasOfInterest...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Recommend ranks events by how often the target user's demographic
// neighbors registered for them. Fewer than two users or an unknown
// target yields an empty result.
func (uc *demographicUsecase) Recommend(ctx context.Context, userID string, topK int) ([]domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	profiles, err := uc.userRepo.GetAllWithColleges(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) < 2 {
		return nil, nil
	}

	targetIdx := -1
	for i := range profiles {
		if profiles[i].ID.Hex() == userID {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, nil
	}

	features := make([]string, len(profiles))
	for i := range profiles {
		features[i] = demographicFeatures(&profiles[i])
	}
	vectors, err := uc.embedder.EmbedBatch(ctx, features)
	if err != nil {
		return nil, err
	}

	similarities := make([]float64, len(vectors))
	for i := range vectors {
		similarities[i] = cosineSimilarity32(vectors[targetIdx], vectors[i])
	}

	neighborIDs := make([]primitive.ObjectID, 0, neighborCount)
	for _, idx := range topNeighbors(similarities, targetIdx, neighborCount) {
		neighborIDs = append(neighborIDs, profiles[idx].ID)
	}

	registrations, err := uc.registrationRepo.GetByStudentIDs(ctx, neighborIDs)
	if err != nil {
		return nil, err
	}

	// Count registrations per event; ties keep first-encounter order.
	counts := make(map[string]int)
	order := make([]string, 0, len(registrations))
	for _, registration := range registrations {
		eventID := registration.EventID.Hex()
		if counts[eventID] == 0 {
			order = append(order, eventID)
		}
		counts[eventID]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topK {
		order = order[:topK]
	}
	candidates := make([]domain.Candidate, 0, len(order))
	for _, eventID := range order {
		candidates = append(candidates, domain.Candidate{
			EventID: eventID,
			Score:   float64(counts[eventID]),
		})
	}
	return candidates, nil
}
