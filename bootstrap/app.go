package bootstrap

import (
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Qdrant *qdrant.Client
	Logger *zap.Logger
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Logger = NewLogger(app.Env)
	app.Mongo = NewMongoDatabase(app.Env)
	app.Qdrant = NewQdrantClient(app.Env)
	return *app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
