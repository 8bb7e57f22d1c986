package main

import (
	"context"

	"github.com/saarzint/candle-recall/internal/adapter"
	"github.com/saarzint/candle-recall/internal/client"
	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/tui"
	"github.com/saarzint/candle-recall/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("candle-recall-client")
	log.Info().Msg(build.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages.SessionRepository, serverAdapter, log)
	ui := tui.New(services, build, log)

	if err = client.NewApp(services, ui, log).Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
