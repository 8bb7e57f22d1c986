package main

import (
	"context"
	"fmt"

	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/handler"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/server"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/workers"
	"github.com/saarzint/candle-recall/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build.String())

	log := logger.NewLogger("candle-recall-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}

	repos, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repos.Close()

	services, err := service.NewServices(repos, service.NewLogMailer(log), cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, repos, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewCleanupWorker(services.MaintenanceService, cfg.Workers.CleanupInterval, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
