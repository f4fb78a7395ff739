//go:build wireinject
// +build wireinject

package di

import (
	"pmsbridge/config"
	"pmsbridge/infras/agilysys"
	"pmsbridge/infras/akia"
	"pmsbridge/infras/hubspot"
	"pmsbridge/infras/jwt"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/mongo"
	"pmsbridge/infras/oauth"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/postgres"
	"pmsbridge/infras/redis"
	"pmsbridge/infras/s3"
	"pmsbridge/permissions"
	"pmsbridge/shared/cache"
	"pmsbridge/transport/http"
	"pmsbridge/transport/http/middleware"
	"pmsbridge/transport/http/router"

	authService "pmsbridge/internal/domains/auth/service"
	integrationService "pmsbridge/internal/domains/integration/service"
	reservationService "pmsbridge/internal/domains/reservation/service"
	tokenRepository "pmsbridge/internal/domains/token/repository"
	tokenService "pmsbridge/internal/domains/token/service"
	adminHandler "pmsbridge/internal/handlers/admin"
	authHandler "pmsbridge/internal/handlers/auth"
	webhookHandler "pmsbridge/internal/handlers/webhook"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	mongo.New,
	otel.New,
	redis.New,
	metrics.New,
	s3.New,
	jwt.New,
	oauth.New,
)

var vendors = wire.NewSet(
	wire.Bind(new(akia.AccessTokenProvider), new(tokenService.Manager)),
	akia.New,
	agilysys.New,
	hubspot.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tokenDomain = wire.NewSet(
	tokenRepository.New,
	tokenService.New,
)

var reservationDomain = wire.NewSet(
	reservationService.NewSynchronizer,
	reservationService.New,
)

var domains = wire.NewSet(
	tokenDomain,
	reservationDomain,
	authService.New,
	integrationService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	webhookHandler.New,
	authHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		vendors,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
