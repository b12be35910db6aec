package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"
	"hotel/shared/metrics"

	"github.com/rs/zerolog/log"
)

//go:generate swag init -g main.go -d ./,../../internal/handlers -o ../../docs --parseDependency --parseInternal

// @title Hotel Admin API
// @version 1.0
// @description Bookings, guests, staff and the finance ledger of a hotel, with xlsx reports.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.UseEnvironmentOutput(cfg)
	logger.SetLogLevel(cfg)

	metrics.Register()

	if cfg.DocStore.Driver == config.DocStoreDriverPostgres && cfg.DocStore.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate document store")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
