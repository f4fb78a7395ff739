package repository

import (
	"context"
	"errors"
	"fmt"

	"pmsbridge/infras/otel"
	"pmsbridge/internal/domains/token/model"
	"pmsbridge/shared/constant"
	"pmsbridge/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoImpl struct {
	collection *mongo.Collection
	otel       otel.Otel
}

func NewMongo(collection *mongo.Collection, otel otel.Otel) Repository {
	return &mongoImpl{
		collection: collection,
		otel:       otel,
	}
}

func (repo *mongoImpl) Get(ctx context.Context) (token model.AuthToken, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	err = repo.collection.FindOne(ctx, bson.M{"_id": constant.TokenRecordID}).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return token, ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return token, fmt.Errorf("failed to get document (%s): %w", model.EntityName, err)
	}

	return token, nil
}

func (repo *mongoImpl) Upsert(ctx context.Context, token model.AuthToken) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	token.ID = constant.TokenRecordID

	_, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": constant.TokenRecordID}, token, options.Replace().SetUpsert(true))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert document (%s): %w", model.EntityName, err)
	}

	return nil
}
