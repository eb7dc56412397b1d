package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv               string `mapstructure:"APP_ENV"`
	ServerAddress        string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout       int    `mapstructure:"CONTEXT_TIMEOUT"`
	MongoURI             string `mapstructure:"MONGO_URI"`
	DBName               string `mapstructure:"DB_NAME"`
	AccessTokenSecret    string `mapstructure:"ACCESS_TOKEN_SECRET"`
	QdrantHost           string `mapstructure:"QDRANT_HOST"`
	QdrantPort           int    `mapstructure:"QDRANT_PORT"`
	QdrantCollection     string `mapstructure:"QDRANT_COLLECTION"`
	EmbeddingBaseURL     string `mapstructure:"EMBEDDING_BASE_URL"`
	EmbeddingModel       string `mapstructure:"EMBEDDING_MODEL"`
	EmbeddingDim         int    `mapstructure:"EMBEDDING_DIM"`
	RebuildIntervalHours int    `mapstructure:"REBUILD_INTERVAL_HOURS"`
	LogFilePath          string `mapstructure:"LOG_FILE_PATH"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("Can't find the file .env : ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("Environment can't be loaded: ", err)
	}

	if env.ContextTimeout == 0 {
		env.ContextTimeout = 30
	}
	if env.QdrantCollection == "" {
		env.QdrantCollection = "event_genomes"
	}
	if env.EmbeddingDim == 0 {
		env.EmbeddingDim = 768
	}
	if env.RebuildIntervalHours == 0 {
		env.RebuildIntervalHours = 12
	}
	if env.LogFilePath == "" {
		env.LogFilePath = "logs/recommender.log"
	}

	if env.AppEnv == "development" {
		log.Println("The App is running in development env")
	}

	return &env
}
