package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pmsbridge/config"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/oauth"
	"pmsbridge/infras/otel"
	"pmsbridge/internal/domains/token/model"
	"pmsbridge/internal/domains/token/repository"
	"pmsbridge/shared/constant"
	"pmsbridge/shared/failure"

	"github.com/rs/zerolog/log"
)

// Token hands out a usable Akia access token, refreshing it when it has expired.
type Manager interface {
	GetValidToken(ctx context.Context) (model.AuthToken, error)
	// AccessToken is GetValidToken reduced to the bearer value.
	AccessToken(ctx context.Context) (string, error)
	Store(ctx context.Context, grant *oauth.Grant) (model.AuthToken, error)
}

type Clock func() time.Time

type serviceImpl struct {
	repo       repository.Repository
	oauth      oauth.Client
	otel       otel.Otel
	metrics    *metrics.Metrics
	now        Clock
	defaultTTL time.Duration

	// mu serializes refreshes within the process.
	mu sync.Mutex
}

func New(repo repository.Repository, oauthClient oauth.Client, cfg *config.Config, otel otel.Otel, m *metrics.Metrics) Manager {
	return NewWithClock(repo, oauthClient, cfg, otel, m, time.Now)
}

func NewWithClock(repo repository.Repository, oauthClient oauth.Client, cfg *config.Config, otel otel.Otel, m *metrics.Metrics, now Clock) Manager {
	return &serviceImpl{
		repo:       repo,
		oauth:      oauthClient,
		otel:       otel,
		metrics:    m,
		now:        now,
		defaultTTL: time.Duration(cfg.Token.DefaultTTLSeconds) * time.Second,
	}
}

func (s *serviceImpl) GetValidToken(ctx context.Context) (token model.AuthToken, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetValidToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err = s.load(ctx)
	if err != nil {
		return token, err
	}

	if !token.Expired(s.now()) {
		return token, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have refreshed while this one waited.
	token, err = s.load(ctx)
	if err != nil {
		return token, err
	}

	if !token.Expired(s.now()) {
		return token, nil
	}

	return s.refresh(ctx, token)
}

func (s *serviceImpl) AccessToken(ctx context.Context) (string, error) {
	token, err := s.GetValidToken(ctx)
	if err != nil {
		return constant.Empty, err
	}

	return token.AccessToken, nil
}

func (s *serviceImpl) Store(ctx context.Context, grant *oauth.Grant) (token model.AuthToken, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token = s.toModel(grant, constant.Empty)

	if err = s.repo.Upsert(ctx, token); err != nil {
		log.Error().Err(err).Msg("failed to store akia token")

		return model.AuthToken{}, fmt.Errorf("failed to store akia token: %w", err)
	}

	log.Info().Time("expires_at", token.ExpiresAtTime()).Msg("akia token stored")

	return token, nil
}

func (s *serviceImpl) load(ctx context.Context) (model.AuthToken, error) {
	token, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return token, failure.ErrNotAuthenticated
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to read akia token")

		return token, fmt.Errorf("failed to read akia token: %w", err)
	}

	if token.Empty() {
		return token, failure.ErrNotAuthenticated
	}

	return token, nil
}

func (s *serviceImpl) refresh(ctx context.Context, current model.AuthToken) (model.AuthToken, error) {
	if current.RefreshToken == "" {
		s.metrics.ObserveRefresh(constant.OutcomeFailure)

		return model.AuthToken{}, failure.ErrRefreshFailed
	}

	grant, err := s.oauth.Refresh(ctx, current.RefreshToken)
	if err != nil {
		s.metrics.ObserveRefresh(constant.OutcomeFailure)
		log.Error().Err(err).Msg("akia token refresh failed")

		return model.AuthToken{}, fmt.Errorf("%w: %w", failure.ErrRefreshFailed, err)
	}

	token := s.toModel(grant, current.RefreshToken)

	if err = s.repo.Upsert(ctx, token); err != nil {
		s.metrics.ObserveRefresh(constant.OutcomeFailure)
		log.Error().Err(err).Msg("failed to persist refreshed akia token")

		return model.AuthToken{}, fmt.Errorf("failed to persist refreshed akia token: %w", err)
	}

	s.metrics.ObserveRefresh(constant.OutcomeSuccess)
	log.Info().Time("expires_at", token.ExpiresAtTime()).Msg("akia token refreshed")

	return token, nil
}

// toModel stores the expiry TokenExpirySkew before the provider deadline.
func (s *serviceImpl) toModel(grant *oauth.Grant, previousRefresh string) model.AuthToken {
	now := s.now()

	lifetime := grant.ExpiresIn
	if lifetime <= 0 {
		lifetime = s.defaultTTL
	}

	refreshToken := grant.RefreshToken
	if refreshToken == "" {
		refreshToken = previousRefresh
	}

	return model.AuthToken{
		ID:           constant.TokenRecordID,
		AccessToken:  grant.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(lifetime - constant.TokenExpirySkew).UnixMilli(),
		UpdatedAt:    now.UTC(),
	}
}
