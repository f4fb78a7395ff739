package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"pmsbridge/config"
	"pmsbridge/infras/mongo"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/postgres"
	"pmsbridge/internal/domains/token/model"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("auth token not found")

// Repository persists the singleton Akia credential. Writes are last-write-wins.
type Repository interface {
	Get(ctx context.Context) (model.AuthToken, error)
	Upsert(ctx context.Context, token model.AuthToken) error
}

// New picks the backing store from TOKEN_STORE_DRIVER.
func New(cfg *config.Config, db *postgres.Connection, mdb *mongo.Database, otel otel.Otel) Repository {
	if cfg.Token.StoreDriver == config.TokenStoreMongo {
		log.Info().Str("collection", cfg.DB.Mongo.Collection).Msg("Using MongoDB token store")

		return NewMongo(mdb.DB.Collection(cfg.DB.Mongo.Collection), otel)
	}

	log.Info().Str("table", model.TableName).Msg("Using Postgres token store")

	return NewPostgres(db.Write, otel)
}
