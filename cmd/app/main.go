//go:generate go run github.com/swaggo/swag/cmd/swag init --dir ../../ --generalInfo cmd/app/main.go --output ../../docs --parseInternal

// @title PMS Bridge API
// @version 1.0
// @description Relays Agilysys reservation events to Akia and HubSpot.
// @BasePath /
// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"pmsbridge/config"
	"pmsbridge/di"
	"pmsbridge/helper"
	"pmsbridge/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate && cfg.Token.StoreDriver == config.TokenStorePostgres {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate token store")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
