package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
)

// InteractionMatrix is a dense user×event grid of observed engagement
// strength. Cells hold a rating (1-5) when the user rated the event, 1 for
// a bare registration, 0 otherwise.
type InteractionMatrix struct {
	Cells      [][]float64
	UserIndex  map[string]int
	EventIndex map[string]int
	Users      []domain.User
	Events     []domain.Event
}

// InteractionMatrixBuilder assembles the matrix fresh on every call; there
// is no cache, so each recommendation sees current store state.
type InteractionMatrixBuilder struct {
	userRepo         domain.UserRepository
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	teamRepo         domain.StudentTeamRepository
	logger           *zap.Logger
}

func NewInteractionMatrixBuilder(
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	teamRepo domain.StudentTeamRepository,
	logger *zap.Logger,
) *InteractionMatrixBuilder {
	return &InteractionMatrixBuilder{
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		teamRepo:         teamRepo,
		logger:           logger,
	}
}

// Build returns (nil, nil) when there are no users or no published events.
// Ratings are applied first and are never overwritten by the registration
// pass; stale references are skipped.
func (b *InteractionMatrixBuilder) Build(ctx context.Context) (*InteractionMatrix, error) {
	users, err := b.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	events, err := b.eventRepo.GetPublished(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 || len(events) == 0 {
		return nil, nil
	}

	userIndex := make(map[string]int, len(users))
	for i, u := range users {
		userIndex[u.ID.Hex()] = i
	}
	eventIndex := make(map[string]int, len(events))
	for j, e := range events {
		eventIndex[e.ID.Hex()] = j
	}

	cells := make([][]float64, len(users))
	for i := range cells {
		cells[i] = make([]float64, len(events))
	}

	// First pass: explicit ratings embedded in the event documents.
	for j, event := range events {
		for _, rating := range event.Ratings {
			if i, ok := userIndex[rating.By.Hex()]; ok {
				cells[i][j] = rating.Rating
			}
		}
	}

	// Second pass: registrations as implicit signal. A registration never
	// overwrites a non-zero cell.
	registrations, err := b.registrationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	teamCache := make(map[string]*domain.StudentTeam)
	for _, registration := range registrations {
		j, ok := eventIndex[registration.EventID.Hex()]
		if !ok {
			continue
		}
		for _, uid := range b.resolveParticipants(ctx, registration, teamCache) {
			if i, ok := userIndex[uid]; ok && cells[i][j] == 0 {
				cells[i][j] = 1
			}
		}
	}

	return &InteractionMatrix{
		Cells:      cells,
		UserIndex:  userIndex,
		EventIndex: eventIndex,
		Users:      users,
		Events:     events,
	}, nil
}

// resolveParticipants expands a registration into the users who attended:
// the direct registrant always, plus the team leader and approved members
// for team registrations. A missing team is a stale reference and only the
// direct registrant counts.
func (b *InteractionMatrixBuilder) resolveParticipants(
	ctx context.Context,
	registration domain.Registration,
	teamCache map[string]*domain.StudentTeam,
) []string {
	participants := []string{registration.StudentID.Hex()}
	if registration.StudentTeamID.IsZero() {
		return participants
	}

	teamID := registration.StudentTeamID.Hex()
	team, cached := teamCache[teamID]
	if !cached {
		var err error
		team, err = b.teamRepo.GetByID(ctx, registration.StudentTeamID)
		if err != nil {
			b.logger.Warn("failed to resolve student team",
				zap.String("teamId", teamID),
				zap.Error(err))
			team = nil
		}
		teamCache[teamID] = team
	}
	if team == nil {
		return participants
	}

	participants = appendUnique(participants, team.Leader)
	for _, member := range team.Members {
		if member.Status == domain.TeamMemberApproved {
			participants = appendUnique(participants, member.Member)
		}
	}
	return participants
}

func appendUnique(ids []string, id primitive.ObjectID) []string {
	hex := id.Hex()
	for _, existing := range ids {
		if existing == hex {
			return ids
		}
	}
	return append(ids, hex)
}
