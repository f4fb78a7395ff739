package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"

	"pmsbridge/config"
	"pmsbridge/infras/agilysys"
	"pmsbridge/infras/akia"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/remote"
	"pmsbridge/shared/constant"
	"pmsbridge/shared/failure"
	"pmsbridge/shared/validator"

	"github.com/rs/zerolog/log"
)

// Integration exposes operator actions against the connected vendors.
type Integration interface {
	// RegisterWebhook subscribes endpointURL, or the configured webhook URL when empty, to the reservation events.
	RegisterWebhook(ctx context.Context, endpointURL string) (json.RawMessage, error)
	ListAkiaProperties(ctx context.Context) (json.RawMessage, error)
}

type serviceImpl struct {
	agilysys   agilysys.Client
	akia       akia.Client
	webhookURL string
	otel       otel.Otel
}

func New(agilysysClient agilysys.Client, akiaClient akia.Client, cfg *config.Config, otel otel.Otel) Integration {
	return &serviceImpl{
		agilysys:   agilysysClient,
		akia:       akiaClient,
		webhookURL: cfg.Agilysys.WebhookURL,
		otel:       otel,
	}
}

func (s *serviceImpl) RegisterWebhook(ctx context.Context, endpointURL string) (res json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterWebhook")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if endpointURL == "" {
		endpointURL = s.webhookURL
	}

	if endpointURL == "" {
		return nil, failure.BadRequestFromString("no webhook url configured")
	}

	if err = validator.ValidateVar(endpointURL, "http_url"); err != nil {
		return nil, err
	}

	res, err = s.agilysys.RegisterWebhook(ctx, endpointURL, agilysys.WebhookEvents)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpointURL).Msg("failed to register agilysys webhook")

		return nil, vendorFailure(err)
	}

	log.Info().Str("endpoint", endpointURL).Strs("events", agilysys.WebhookEvents).Msg("agilysys webhook registered")

	return res, nil
}

func (s *serviceImpl) ListAkiaProperties(ctx context.Context) (res json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAkiaProperties")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.akia.ListProperties(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list akia properties")

		return nil, vendorFailure(err)
	}

	return res, nil
}

// vendorFailure keeps token failures as they are and reports other vendor errors as 502.
func vendorFailure(err error) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	if remote.KindOf(err) == remote.KindUnauthenticated {
		return failure.Unauthorized(err.Error())
	}

	return failure.BadGateway(err)
}
