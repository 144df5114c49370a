package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/handler"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/server"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/store"
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

	log := logger.NewLogger("study-shelf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server config")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("files_dir", cfg.Storage.Files.Dir).
		Str("public_url", cfg.App.PublicURL).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
