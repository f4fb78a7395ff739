package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pmsbridge/infras/otel/mocks"
	"pmsbridge/internal/domains/token/model"
	"pmsbridge/internal/domains/token/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgres(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return repository.NewPostgres(sqlx.NewDb(db, "postgres"), mocks.NewOtel()), mock
}

func TestPostgres_Get(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      model.AuthToken
		wantErr   error
		anyErr    bool
	}{
		{
			name: "stored token",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "access_token", "refresh_token", "expires_at", "updated_at"}).
					AddRow("akia_auth", "access", "refresh", int64(1709290800000), updatedAt)
				mock.ExpectQuery("SELECT id, access_token, refresh_token, expires_at, updated_at FROM oauth_tokens WHERE id =").
					WithArgs("akia_auth").
					WillReturnRows(rows)
			},
			want: model.AuthToken{ID: "akia_auth", AccessToken: "access", RefreshToken: "refresh", ExpiresAt: 1709290800000, UpdatedAt: updatedAt},
		},
		{
			name: "no record",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM oauth_tokens").
					WithArgs("akia_auth").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM oauth_tokens").
					WithArgs("akia_auth").
					WillReturnError(errors.New("connection reset"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newPostgres(t)
			tt.setupMock(mock)

			got, err := repo.Get(context.Background())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, repository.ErrNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgres_Upsert(t *testing.T) {
	token := model.AuthToken{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: 1709290800000, UpdatedAt: time.Now().UTC()}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "insert or overwrite the singleton",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO oauth_tokens (.+) ON CONFLICT \(id\) DO UPDATE`).
					WithArgs("akia_auth", "access", "refresh", int64(1709290800000), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO oauth_tokens").
					WillReturnError(errors.New("read only transaction"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newPostgres(t)
			tt.setupMock(mock)

			err := repo.Upsert(context.Background(), token)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
