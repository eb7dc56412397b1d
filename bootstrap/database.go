package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/BrindaS42/CEMS-SE-GRP-18/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx)
	if err != nil {
		log.Fatal(err)
	}

	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	err := client.Disconnect(context.TODO())
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Connection to MongoDB closed.")
}

func NewQdrantClient(env *Env) *qdrant.Client {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: env.QdrantHost,
		Port: env.QdrantPort,
	})
	if err != nil {
		log.Fatal(err)
	}
	return client
}
