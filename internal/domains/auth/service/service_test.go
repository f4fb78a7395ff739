package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pmsbridge/infras/jwt"
	jwtMocks "pmsbridge/infras/jwt/mocks"
	"pmsbridge/infras/oauth"
	oauthMocks "pmsbridge/infras/oauth/mocks"
	"pmsbridge/infras/otel/mocks"
	"pmsbridge/internal/domains/auth/model/dto"
	"pmsbridge/internal/domains/auth/service"
	tokenMocks "pmsbridge/internal/domains/token/mocks"
	"pmsbridge/internal/domains/token/model"
	"pmsbridge/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	oauth  *oauthMocks.MockClient
	state  *jwtMocks.MockStateSigner
	tokens *tokenMocks.MockManager
	svc    service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		oauth:  oauthMocks.NewMockClient(ctrl),
		state:  jwtMocks.NewMockStateSigner(ctrl),
		tokens: tokenMocks.NewMockManager(ctrl),
	}
	f.svc = service.NewWithClock(f.oauth, f.state, f.tokens, mocks.NewOtel(), func() time.Time { return now })

	return f
}

func TestAuthService_LoginURL(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		want      string
		wantErr   bool
	}{
		{
			name: "signed state goes into the consent url",
			setupMock: func(f fixture) {
				f.state.EXPECT().Sign(now).Return("signed-state", nil)
				f.oauth.EXPECT().AuthCodeURL("signed-state").Return("https://sys.akia.com/oauth/authorize?state=signed-state")
			},
			want: "https://sys.akia.com/oauth/authorize?state=signed-state",
		},
		{
			name: "signing failure",
			setupMock: func(f fixture) {
				f.state.EXPECT().Sign(now).Return("", errors.New("no key"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			got, err := f.svc.LoginURL(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Callback(t *testing.T) {
	grant := &oauth.Grant{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: time.Hour}
	stored := model.AuthToken{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: now.Add(59 * time.Minute).UnixMilli()}

	tests := []struct {
		name      string
		req       dto.CallbackRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "code exchanged and stored",
			req:  dto.CallbackRequest{Code: "auth-code", State: "signed-state"},
			setupMock: func(f fixture) {
				f.state.EXPECT().Verify("signed-state").Return(&jwt.StateClaims{Nonce: "n"}, nil)
				f.oauth.EXPECT().Exchange(gomock.Any(), "auth-code").Return(grant, nil)
				f.tokens.EXPECT().Store(gomock.Any(), grant).Return(stored, nil)
			},
		},
		{
			name:      "declined by operator",
			req:       dto.CallbackRequest{State: "signed-state", Error: "access_denied"},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing code",
			req:       dto.CallbackRequest{State: "signed-state"},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "tampered state",
			req:  dto.CallbackRequest{Code: "auth-code", State: "forged"},
			setupMock: func(f fixture) {
				f.state.EXPECT().Verify("forged").Return(nil, jwt.ErrInvalidState)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "expired state",
			req:  dto.CallbackRequest{Code: "auth-code", State: "old"},
			setupMock: func(f fixture) {
				f.state.EXPECT().Verify("old").Return(nil, jwt.ErrExpiredState)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "token endpoint rejects the code",
			req:  dto.CallbackRequest{Code: "auth-code", State: "signed-state"},
			setupMock: func(f fixture) {
				f.state.EXPECT().Verify("signed-state").Return(&jwt.StateClaims{}, nil)
				f.oauth.EXPECT().Exchange(gomock.Any(), "auth-code").Return(nil, errors.New("invalid_grant"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "store failure",
			req:  dto.CallbackRequest{Code: "auth-code", State: "signed-state"},
			setupMock: func(f fixture) {
				f.state.EXPECT().Verify("signed-state").Return(&jwt.StateClaims{}, nil)
				f.oauth.EXPECT().Exchange(gomock.Any(), "auth-code").Return(grant, nil)
				f.tokens.EXPECT().Store(gomock.Any(), grant).Return(model.AuthToken{}, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Callback(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			require.NoError(t, err)
			assert.True(t, stored.ExpiresAtTime().Equal(res.ExpiresAt))
			assert.NotEmpty(t, res.Message)
		})
	}
}
