package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BrindaS42/CEMS-SE-GRP-18/api/route"
	"github.com/BrindaS42/CEMS-SE-GRP-18/bootstrap"
	"github.com/BrindaS42/CEMS-SE-GRP-18/embedding"
	"github.com/BrindaS42/CEMS-SE-GRP-18/repository"
	"github.com/BrindaS42/CEMS-SE-GRP-18/usecase"
)

func main() {
	app := bootstrap.App()

	env := app.Env
	logger := app.Logger
	defer logger.Sync()

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	timeout := time.Duration(env.ContextTimeout) * time.Second

	// Background full rebuilds keep the vector index aligned with the
	// catalog independently of the incremental add/delete hooks.
	eventRepo := repository.NewEventRepository(db)
	vectorIndex := repository.NewVectorIndexRepository(app.Qdrant, env.QdrantCollection)
	embedder := embedding.NewClient(env.EmbeddingBaseURL, env.EmbeddingModel, env.EmbeddingDim)
	indexUc := usecase.NewIndexUsecase(eventRepo, vectorIndex, embedder, logger, timeout)

	scheduler := bootstrap.NewRebuildScheduler(
		time.Duration(env.RebuildIntervalHours)*time.Hour,
		indexUc.RebuildIndex,
		logger,
	)
	scheduler.Start(context.Background())

	g := gin.Default()

	route.Setup(env, timeout, db, app.Qdrant, logger, g)

	if err := g.Run(env.ServerAddress); err != nil {
		logger.Fatal("server stopped: " + err.Error())
	}
}
