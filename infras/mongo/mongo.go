package mongo

import (
	"context"
	"time"

	"pmsbridge/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultConnectTimeout = 10 * time.Second

// Database wraps the token database handle. DB is nil when the mongo token store is not selected.
type Database struct {
	DB *mongo.Database
}

func New(cfg *config.Config) *Database {
	if cfg.Token.StoreDriver != config.TokenStoreMongo {
		return &Database{}
	}

	timeout := defaultConnectTimeout
	if cfg.DB.Mongo.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.DB.Mongo.TimeoutSeconds) * time.Second
	}

	clientOptions := options.Client().ApplyURI(cfg.DB.Mongo.URI)
	if cfg.DB.Mongo.Username != "" && cfg.DB.Mongo.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.DB.Mongo.Username,
			Password: cfg.DB.Mongo.Password,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
	}

	log.Info().Str("database", cfg.DB.Mongo.Database).Msg("Connected to MongoDB")

	return &Database{DB: client.Database(cfg.DB.Mongo.Database)}
}
