package usecase_test

import (
	"context"
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

func TestDemographicUsecase_Recommend(t *testing.T) {
	timeout := 5 * time.Second

	t.Run("fewer than two users yields empty", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		registrationRepo := new(mocks.RegistrationRepository)
		embedder := new(mocks.Embedder)

		only := domain.DemographicProfile{ID: primitive.NewObjectID()}
		userRepo.On("GetAllWithColleges", mock.Anything).Return([]domain.DemographicProfile{only}, nil)

		uc := usecase.NewDemographicUsecase(userRepo, registrationRepo, embedder, zap.NewNop(), timeout)
		candidates, err := uc.Recommend(context.Background(), only.ID.Hex(), 5)

		assert.NoError(t, err)
		assert.Empty(t, candidates)
		embedder.AssertNotCalled(t, "EmbedBatch", mock.Anything, mock.Anything)
	})

	t.Run("unknown target yields empty", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		registrationRepo := new(mocks.RegistrationRepository)
		embedder := new(mocks.Embedder)

		userRepo.On("GetAllWithColleges", mock.Anything).Return([]domain.DemographicProfile{
			{ID: primitive.NewObjectID()},
			{ID: primitive.NewObjectID()},
		}, nil)

		uc := usecase.NewDemographicUsecase(userRepo, registrationRepo, embedder, zap.NewNop(), timeout)
		candidates, err := uc.Recommend(context.Background(), primitive.NewObjectID().Hex(), 5)

		assert.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("ranks events by neighbor registration counts", func(t *testing.T) {
		target := domain.DemographicProfile{ID: primitive.NewObjectID(), CollegeName: "NIT Trichy"}
		near := domain.DemographicProfile{ID: primitive.NewObjectID(), CollegeName: "NIT Trichy"}
		far := domain.DemographicProfile{ID: primitive.NewObjectID(), CollegeName: "IIT Bombay"}

		popular := primitive.NewObjectID()
		niche := primitive.NewObjectID()

		userRepo := new(mocks.UserRepository)
		registrationRepo := new(mocks.RegistrationRepository)
		embedder := new(mocks.Embedder)

		userRepo.On("GetAllWithColleges", mock.Anything).Return([]domain.DemographicProfile{target, near, far}, nil)
		embedder.On("EmbedBatch", mock.Anything, mock.Anything).Return([][]float32{
			{1, 0},
			{1, 0},
			{0, 1},
		}, nil)
		registrationRepo.On("GetByStudentIDs", mock.Anything, []primitive.ObjectID{near.ID, far.ID}).Return([]domain.Registration{
			{ID: primitive.NewObjectID(), EventID: popular, StudentID: near.ID},
			{ID: primitive.NewObjectID(), EventID: niche, StudentID: near.ID},
			{ID: primitive.NewObjectID(), EventID: popular, StudentID: far.ID},
		}, nil)

		uc := usecase.NewDemographicUsecase(userRepo, registrationRepo, embedder, zap.NewNop(), timeout)
		candidates, err := uc.Recommend(context.Background(), target.ID.Hex(), 5)

		assert.NoError(t, err)
		assert.Len(t, candidates, 2)
		assert.Equal(t, popular.Hex(), candidates[0].EventID)
		assert.Equal(t, 2.0, candidates[0].Score)
		assert.Equal(t, niche.Hex(), candidates[1].EventID)
		assert.Equal(t, 1.0, candidates[1].Score)
	})

	t.Run("ties keep first-encounter order", func(t *testing.T) {
		target := domain.DemographicProfile{ID: primitive.NewObjectID()}
		neighbor := domain.DemographicProfile{ID: primitive.NewObjectID()}

		first := primitive.NewObjectID()
		second := primitive.NewObjectID()

		userRepo := new(mocks.UserRepository)
		registrationRepo := new(mocks.RegistrationRepository)
		embedder := new(mocks.Embedder)

		userRepo.On("GetAllWithColleges", mock.Anything).Return([]domain.DemographicProfile{target, neighbor}, nil)
		embedder.On("EmbedBatch", mock.Anything, mock.Anything).Return([][]float32{
			{1, 0},
			{1, 0},
		}, nil)
		registrationRepo.On("GetByStudentIDs", mock.Anything, mock.Anything).Return([]domain.Registration{
			{ID: primitive.NewObjectID(), EventID: first, StudentID: neighbor.ID},
			{ID: primitive.NewObjectID(), EventID: second, StudentID: neighbor.ID},
		}, nil)

		uc := usecase.NewDemographicUsecase(userRepo, registrationRepo, embedder, zap.NewNop(), timeout)
		candidates, err := uc.Recommend(context.Background(), target.ID.Hex(), 5)

		assert.NoError(t, err)
		assert.Len(t, candidates, 2)
		assert.Equal(t, first.Hex(), candidates[0].EventID)
		assert.Equal(t, second.Hex(), candidates[1].EventID)
	})

	t.Run("truncates to topK", func(t *testing.T) {
		target := domain.DemographicProfile{ID: primitive.NewObjectID()}
		neighbor := domain.DemographicProfile{ID: primitive.NewObjectID()}

		userRepo := new(mocks.UserRepository)
		registrationRepo := new(mocks.RegistrationRepository)
		embedder := new(mocks.Embedder)

		userRepo.On("GetAllWithColleges", mock.Anything).Return([]domain.DemographicProfile{target, neighbor}, nil)
		embedder.On("EmbedBatch", mock.Anything, mock.Anything).Return([][]float32{
			{1},
			{1},
		}, nil)
		registrationRepo.On("GetByStudentIDs", mock.Anything, mock.Anything).Return([]domain.Registration{
			{ID: primitive.NewObjectID(), EventID: primitive.NewObjectID(), StudentID: neighbor.ID},
			{ID: primitive.NewObjectID(), EventID: primitive.NewObjectID(), StudentID: neighbor.ID},
			{ID: primitive.NewObjectID(), EventID: primitive.NewObjectID(), StudentID: neighbor.ID},
		}, nil)

		uc := usecase.NewDemographicUsecase(userRepo, registrationRepo, embedder, zap.NewNop(), timeout)
		candidates, err := uc.Recommend(context.Background(), target.ID.Hex(), 2)

		assert.NoError(t, err)
		assert.Len(t, candidates, 2)
	})
}
