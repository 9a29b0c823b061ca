package main

import (
	_ "placement_service/docs"
	"placement_service/internal/adapter/http/routes"
	"placement_service/internal/config"
	"placement_service/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Practice Placement API
// @version         1.0
// @description     Landing page backend: consultations, practice applications and payapp payment reconciliation.

// @host localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[main] load config")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("[main] server stopped")
	}
}
