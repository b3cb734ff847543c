package main

import (
	"sportshub/config"
	"sportshub/di"
	"sportshub/helper"
	"sportshub/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						Sports Hub API
// @version					1.0
// @description				Campus sports facility booking, schedule approval and team management.
// @BasePath					/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @securityDefinitions.apikey	APIKeyAuth
// @in							header
// @name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
