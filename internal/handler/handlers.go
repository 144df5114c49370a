package handler

import (
	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/handler/http"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
