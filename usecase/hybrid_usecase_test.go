package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/domain"
	"github.com/BrindaS42/CEMS-SE-GRP-18/domain/mocks"
	"github.com/BrindaS42/CEMS-SE-GRP-18/usecase"
)

func TestHybridUsecase_Recommend(t *testing.T) {
	timeout := 5 * time.Second
	userID := primitive.NewObjectID().Hex()

	t.Run("fuses weighted contributions per event", func(t *testing.T) {
		shared := domain.Event{ID: primitive.NewObjectID()}
		contentOnly := domain.Event{ID: primitive.NewObjectID()}

		content := new(mocks.Recommender)
		collaborative := new(mocks.Recommender)
		demographic := new(mocks.Recommender)
		eventRepo := new(mocks.EventRepository)

		content.On("Recommend", mock.Anything, userID, 10).Return([]domain.Candidate{
			{EventID: shared.ID.Hex(), Score: 0.2},
			{EventID: contentOnly.ID.Hex(), Score: 0.5},
		}, nil)
		collaborative.On("Recommend", mock.Anything, userID, 10).Return([]domain.Candidate{
			{EventID: shared.ID.Hex(), Score: 9},
		}, nil)
		demographic.On("Recommend", mock.Anything, userID, 10).Return([]domain.Candidate{
			{EventID: shared.ID.Hex(), Score: 3},
		}, nil)
		eventRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]domain.Event{shared, contentOnly}, nil)

		uc := usecase.NewHybridUsecase(content, collaborative, demographic, eventRepo, zap.NewNop(), timeout)
		ranked, err := uc.Recommend(context.Background(), userID, 5)

		assert.NoError(t, err)
		assert.Len(t, ranked, 2)
		assert.Equal(t, shared.ID, ranked[0].Event.ID)
		assert.InDelta(t, 0.6*(1-0.2)+0.3+0.1, ranked[0].Score, 1e-9)
		assert.Equal(t, contentOnly.ID, ranked[1].Event.ID)
		assert.InDelta(t, 0.6*(1-0.5), ranked[1].Score, 1e-9)
	})

	t.Run("requests double the topK from each strategy", func(t *testing.T) {
		content := new(mocks.Recommender)
		collaborative := new(mocks.Recommender)
		demographic := new(mocks.Recommender)
		eventRepo := new(mocks.EventRepository)

		content.On("Recommend", mock.Anything, userID, 6).Return(nil, nil)
		collaborative.On("Recommend", mock.Anything, userID, 6).Return(nil, nil)
		demographic.On("Recommend", mock.Anything, userID, 6).Return(nil, nil)

		uc := usecase.NewHybridUsecase(content, collaborative, demographic, eventRepo, zap.NewNop(), timeout)
		ranked, err := uc.Recommend(context.Background(), userID, 3)

		assert.NoError(t, err)
		assert.Empty(t, ranked)
		content.AssertExpectations(t)
		collaborative.AssertExpectations(t)
		demographic.AssertExpectations(t)
		eventRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})

	t.Run("a failing strategy contributes nothing", func(t *testing.T) {
		event := domain.Event{ID: primitive.NewObjectID()}

		content := new(mocks.Recommender)
		collaborative := new(mocks.Recommender)
		demographic := new(mocks.Recommender)
		eventRepo := new(mocks.EventRepository)

		content.On("Recommend", mock.Anything, userID, 10).Return(nil, errors.New("embedding server unreachable"))
		collaborative.On("Recommend", mock.Anything, userID, 10).Return([]domain.Candidate{
			{EventID: event.ID.Hex(), Score: 4},
		}, nil)
		demographic.On("Recommend", mock.Anything, userID, 10).Return(nil, nil)
		eventRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]domain.Event{event}, nil)

		uc := usecase.NewHybridUsecase(content, collaborative, demographic, eventRepo, zap.NewNop(), timeout)
		ranked, err := uc.Recommend(context.Background(), userID, 5)

		assert.NoError(t, err)
		assert.Len(t, ranked, 1)
		assert.Equal(t, event.ID, ranked[0].Event.ID)
		assert.InDelta(t, domain.WeightCollaborative, ranked[0].Score, 1e-9)
	})

	t.Run("truncates to topK in descending order", func(t *testing.T) {
		events := make([]domain.Event, 3)
		candidates := make([]domain.Candidate, 3)
		for i := range events {
			events[i] = domain.Event{ID: primitive.NewObjectID()}
			candidates[i] = domain.Candidate{EventID: events[i].ID.Hex(), Score: 1}
		}

		content := new(mocks.Recommender)
		collaborative := new(mocks.Recommender)
		demographic := new(mocks.Recommender)
		eventRepo := new(mocks.EventRepository)

		content.On("Recommend", mock.Anything, userID, 4).Return([]domain.Candidate{
			{EventID: events[2].ID.Hex(), Score: 0.1},
		}, nil)
		collaborative.On("Recommend", mock.Anything, userID, 4).Return(candidates, nil)
		demographic.On("Recommend", mock.Anything, userID, 4).Return(nil, nil)
		eventRepo.On("GetByIDs", mock.Anything, mock.Anything).Return(events, nil)

		uc := usecase.NewHybridUsecase(content, collaborative, demographic, eventRepo, zap.NewNop(), timeout)
		ranked, err := uc.Recommend(context.Background(), userID, 2)

		assert.NoError(t, err)
		assert.Len(t, ranked, 2)
		assert.Equal(t, events[2].ID, ranked[0].Event.ID)
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
		}
	})

	t.Run("drops fused candidates whose event is gone", func(t *testing.T) {
		kept := domain.Event{ID: primitive.NewObjectID()}
		gone := primitive.NewObjectID().Hex()

		content := new(mocks.Recommender)
		collaborative := new(mocks.Recommender)
		demographic := new(mocks.Recommender)
		eventRepo := new(mocks.EventRepository)

		content.On("Recommend", mock.Anything, userID, 10).Return(nil, nil)
		collaborative.On("Recommend", mock.Anything, userID, 10).Return([]domain.Candidate{
			{EventID: kept.ID.Hex(), Score: 2},
			{EventID: gone, Score: 1},
		}, nil)
		demographic.On("Recommend", mock.Anything, userID, 10).Return(nil, nil)
		eventRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]domain.Event{kept}, nil)

		uc := usecase.NewHybridUsecase(content, collaborative, demographic, eventRepo, zap.NewNop(), timeout)
		ranked, err := uc.Recommend(context.Background(), userID, 5)

		assert.NoError(t, err)
		assert.Len(t, ranked, 1)
		assert.Equal(t, kept.ID, ranked[0].Event.ID)
	})
}
