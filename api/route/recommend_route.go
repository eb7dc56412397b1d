package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/api/controller"
	"github.com/BrindaS42/CEMS-SE-GRP-18/api/middleware"
	"github.com/BrindaS42/CEMS-SE-GRP-18/bootstrap"
	"github.com/BrindaS42/CEMS-SE-GRP-18/embedding"
	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
	"github.com/BrindaS42/CEMS-SE-GRP-18/repository"
	"github.com/BrindaS42/CEMS-SE-GRP-18/usecase"
)

func NewRecommendRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	qdrantClient *qdrant.Client,
	logger *zap.Logger,
	group *gin.RouterGroup,
) {
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	teamRepo := repository.NewStudentTeamRepository(db)
	vectorIndex := repository.NewVectorIndexRepository(qdrantClient, env.QdrantCollection)
	embedder := embedding.NewClient(env.EmbeddingBaseURL, env.EmbeddingModel, env.EmbeddingDim)

	matrixBuilder := usecase.NewInteractionMatrixBuilder(userRepo, eventRepo, registrationRepo, teamRepo, logger)
	contentUc := usecase.NewContentUsecase(userRepo, eventRepo, vectorIndex, embedder, logger, timeout)
	collaborativeUc := usecase.NewCollaborativeUsecase(matrixBuilder, logger, timeout)
	demographicUc := usecase.NewDemographicUsecase(userRepo, registrationRepo, embedder, logger, timeout)
	hybridUc := usecase.NewHybridUsecase(contentUc, collaborativeUc, demographicUc, eventRepo, logger, timeout)
	indexUc := usecase.NewIndexUsecase(eventRepo, vectorIndex, embedder, logger, timeout)

	recommendCtrl := controller.NewRecommendController(contentUc, hybridUc)
	indexCtrl := controller.NewIndexController(indexUc)

	recommendGroup := group.Group("/recommend")
	{
		studentRoutes := recommendGroup.Group("", middleware.RequireRoles("student"))
		// GET /recommend/user/:userId?top_k=5
		studentRoutes.GET("/user/:userId", recommendCtrl.GetContentRecommendations)
		// GET /recommend/hybrid/:userId?top_k=5
		studentRoutes.GET("/hybrid/:userId", recommendCtrl.GetHybridRecommendations)

		adminRoutes := recommendGroup.Group("", middleware.RequireRoles("admin"))
		// POST /recommend/rebuild
		adminRoutes.POST("/rebuild", indexCtrl.Rebuild)

		organizerRoutes := recommendGroup.Group("", middleware.RequireRoles("organizer", "admin"))
		// POST /recommend/add/:eventId
		organizerRoutes.POST("/add/:eventId", indexCtrl.Add)
		// DELETE /recommend/delete/:eventId
		organizerRoutes.DELETE("/delete/:eventId", indexCtrl.Remove)
	}
}
