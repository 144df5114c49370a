package main

import (
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/client"
	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/tui"
	"github.com/MKhiriev/go-study-shelf/internal/workers"
	"github.com/MKhiriev/go-study-shelf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range build.Lines() {
		fmt.Println(line)
	}

	log := logger.NewClientLogger("study-shelf-client", "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Dashboard, log)

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewWorkers(services, cfg.Workers, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		return
	}
}
