package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
)

// appInfoService answers GET /api/version.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService resolves the version the server reports. A version
// injected by the linker wins over APP_VERSION.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	source := "config"
	if build.HasBuildVersion() {
		version = build.BuildVersion()
		source = "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Str("source", source).Msg("server version resolved")

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
