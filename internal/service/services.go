package service

import (
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	SubjectService  SubjectService
	DocumentService DocumentService
	FileService     FileService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewValidator()

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, NewLogMailer(cfg.App, logger), validator, cfg.App, logger),
		ProfileService:  NewProfileService(storages.UserRepository, validator, logger),
		SubjectService:  NewSubjectService(storages.SubjectRepository, validator, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, storages.SubjectRepository, validator, logger),
		FileService:     NewFileService(storages.FileStorage, validator, cfg, logger),
		AppInfoService:  appInfoService,
	}, nil
}
