package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/api/middleware"
	"github.com/BrindaS42/CEMS-SE-GRP-18/bootstrap"
	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

func Setup(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	qdrantClient *qdrant.Client,
	logger *zap.Logger,
	gin *gin.Engine,
) {
	protectedRouter := gin.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	NewRecommendRouter(env, timeout, db, qdrantClient, logger, protectedRouter)
}
