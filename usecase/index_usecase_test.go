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

func TestIndexUsecase_RebuildIndex(t *testing.T) {
	timeout := 5 * time.Second

	t.Run("recreates the index and upserts every published event", func(t *testing.T) {
		first := domain.Event{ID: primitive.NewObjectID(), Title: "Hackathon"}
		second := domain.Event{ID: primitive.NewObjectID(), Title: "Art Expo"}
		vector := []float32{0.1, 0.2}

		eventRepo := new(mocks.EventRepository)
		index := new(mocks.VectorIndex)
		embedder := new(mocks.Embedder)

		index.On("DeleteIndex", mock.Anything).Return(nil)
		embedder.On("Dimension").Return(2)
		index.On("CreateIndex", mock.Anything, 2).Return(nil)
		eventRepo.On("GetPublished", mock.Anything).Return([]domain.Event{first, second}, nil)
		embedder.On("Embed", mock.Anything, mock.AnythingOfType("string")).Return(vector, nil)
		index.On("Upsert", mock.Anything, []domain.VectorPoint{
			{EventID: first.ID.Hex(), Vector: vector},
			{EventID: second.ID.Hex(), Vector: vector},
		}).Return(nil)

		uc := usecase.NewIndexUsecase(eventRepo, index, embedder, zap.NewNop(), timeout)
		err := uc.RebuildIndex(context.Background())

		assert.NoError(t, err)
		index.AssertExpectations(t)
		embedder.AssertNumberOfCalls(t, "Embed", 2)
	})

	t.Run("a failed delete aborts the rebuild", func(t *testing.T) {
		eventRepo := new(mocks.EventRepository)
		index := new(mocks.VectorIndex)
		embedder := new(mocks.Embedder)

		index.On("DeleteIndex", mock.Anything).Return(errors.New("index store unreachable"))

		uc := usecase.NewIndexUsecase(eventRepo, index, embedder, zap.NewNop(), timeout)
		err := uc.RebuildIndex(context.Background())

		assert.Error(t, err)
		index.AssertNotCalled(t, "CreateIndex", mock.Anything, mock.Anything)
		index.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestIndexUsecase_AddEvent(t *testing.T) {
	timeout := 5 * time.Second

	t.Run("embeds the genome with amplified tags", func(t *testing.T) {
		event := domain.Event{
			ID:           primitive.NewObjectID(),
			Title:        "RoboWars",
			Description:  "Battle bots in the arena",
			CategoryTags: []string{"robotics", "tech"},
		}
		wantGenome := "RoboWars. Battle bots in the arena. Categories: robotics tech. " +
			"Focus Areas: robotics tech robotics tech robotics tech."
		vector := []float32{0.7}

		eventRepo := new(mocks.EventRepository)
		index := new(mocks.VectorIndex)
		embedder := new(mocks.Embedder)

		eventRepo.On("GetByID", mock.Anything, event.ID.Hex()).Return(&event, nil)
		embedder.On("Embed", mock.Anything, wantGenome).Return(vector, nil)
		index.On("Upsert", mock.Anything, []domain.VectorPoint{
			{EventID: event.ID.Hex(), Vector: vector},
		}).Return(nil)

		uc := usecase.NewIndexUsecase(eventRepo, index, embedder, zap.NewNop(), timeout)
		err := uc.AddEvent(context.Background(), event.ID.Hex())

		assert.NoError(t, err)
		embedder.AssertExpectations(t)
		index.AssertExpectations(t)
	})

	t.Run("a missing event is skipped without error", func(t *testing.T) {
		eventRepo := new(mocks.EventRepository)
		index := new(mocks.VectorIndex)
		embedder := new(mocks.Embedder)

		eventID := primitive.NewObjectID().Hex()
		eventRepo.On("GetByID", mock.Anything, eventID).Return(nil, nil)

		uc := usecase.NewIndexUsecase(eventRepo, index, embedder, zap.NewNop(), timeout)
		err := uc.AddEvent(context.Background(), eventID)

		assert.NoError(t, err)
		embedder.AssertNotCalled(t, "Embed", mock.Anything, mock.Anything)
		index.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestIndexUsecase_RemoveEvent(t *testing.T) {
	eventRepo := new(mocks.EventRepository)
	index := new(mocks.VectorIndex)
	embedder := new(mocks.Embedder)

	eventID := primitive.NewObjectID().Hex()
	index.On("DeleteByEvent", mock.Anything, eventID).Return(nil)

	uc := usecase.NewIndexUsecase(eventRepo, index, embedder, zap.NewNop(), 5*time.Second)
	err := uc.RemoveEvent(context.Background(), eventID)

	assert.NoError(t, err)
	index.AssertExpectations(t)
}
