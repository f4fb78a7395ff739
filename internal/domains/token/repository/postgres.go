package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pmsbridge/infras/otel"
	"pmsbridge/internal/domains/token/model"
	"pmsbridge/shared/constant"
	"pmsbridge/shared/logger"

	"github.com/jmoiron/sqlx"
)

const (
	queryGetToken = `SELECT id, access_token, refresh_token, expires_at, updated_at FROM ` + model.TableName + ` WHERE id = $1`

	queryUpsertToken = `INSERT INTO ` + model.TableName + ` (id, access_token, refresh_token, expires_at, updated_at)
VALUES (:id, :access_token, :refresh_token, :expires_at, :updated_at)
ON CONFLICT (id) DO UPDATE SET
	access_token = EXCLUDED.access_token,
	refresh_token = EXCLUDED.refresh_token,
	expires_at = EXCLUDED.expires_at,
	updated_at = EXCLUDED.updated_at`
)

type postgresImpl struct {
	db   *sqlx.DB
	otel otel.Otel
}

func NewPostgres(db *sqlx.DB, otel otel.Otel) Repository {
	return &postgresImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *postgresImpl) Get(ctx context.Context) (token model.AuthToken, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetToken)

	err = repo.db.GetContext(ctx, &token, queryGetToken, constant.TokenRecordID)
	if errors.Is(err, sql.ErrNoRows) {
		return token, ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return token, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return token, nil
}

func (repo *postgresImpl) Upsert(ctx context.Context, token model.AuthToken) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUpsertToken)

	token.ID = constant.TokenRecordID

	if _, err := repo.db.NamedExecContext(ctx, queryUpsertToken, token); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
