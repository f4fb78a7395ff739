package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pmsbridge/infras/jwt"
	"pmsbridge/infras/oauth"
	"pmsbridge/infras/otel"
	"pmsbridge/internal/domains/auth/model/dto"
	tokenService "pmsbridge/internal/domains/token/service"
	"pmsbridge/shared/constant"
	"pmsbridge/shared/failure"
	"pmsbridge/shared/timezone"
	"pmsbridge/shared/validator"

	"github.com/rs/zerolog/log"
)

// Auth runs the Akia authorization code flow.
type Auth interface {
	// LoginURL returns the Akia consent page carrying a freshly signed state.
	LoginURL(ctx context.Context) (string, error)
	Callback(ctx context.Context, req dto.CallbackRequest) (dto.CallbackResponse, error)
}

type serviceImpl struct {
	oauth  oauth.Client
	state  jwt.StateSigner
	tokens tokenService.Manager
	otel   otel.Otel
	now    func() time.Time
}

func New(oauthClient oauth.Client, state jwt.StateSigner, tokens tokenService.Manager, otel otel.Otel) Auth {
	return NewWithClock(oauthClient, state, tokens, otel, timezone.Now)
}

func NewWithClock(oauthClient oauth.Client, state jwt.StateSigner, tokens tokenService.Manager, otel otel.Otel, now func() time.Time) Auth {
	return &serviceImpl{
		oauth:  oauthClient,
		state:  state,
		tokens: tokens,
		otel:   otel,
		now:    now,
	}
}

func (s *serviceImpl) LoginURL(ctx context.Context) (loginURL string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state, err := s.state.Sign(s.now())
	if err != nil {
		log.Error().Err(err).Msg("failed to sign oauth state")

		return constant.Empty, fmt.Errorf("failed to sign oauth state: %w", err)
	}

	return s.oauth.AuthCodeURL(state), nil
}

func (s *serviceImpl) Callback(ctx context.Context, req dto.CallbackRequest) (res dto.CallbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Callback")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Error != "" {
		log.Warn().Str("error", req.Error).Msg("akia authorization was declined")

		return res, failure.BadRequestFromString("akia authorization declined: " + req.Error)
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if _, err = s.state.Verify(req.State); err != nil {
		log.Warn().Err(err).Msg("oauth callback carried an unusable state")

		if errors.Is(err, jwt.ErrExpiredState) {
			return res, failure.BadRequestFromString(jwt.ErrExpiredState.Error())
		}

		return res, failure.ErrInvalidState
	}

	grant, err := s.oauth.Exchange(ctx, req.Code)
	if err != nil {
		return res, failure.BadGateway(err)
	}

	token, err := s.tokens.Store(ctx, grant)
	if err != nil {
		return res, fmt.Errorf("failed to store akia grant: %w", err)
	}

	res.FromToken(token)

	return res, nil
}
