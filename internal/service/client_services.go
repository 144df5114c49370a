package service

import (
	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
)

type ClientServices struct {
	Notifier        *ChannelNotifier
	SessionService  ClientSessionService
	RefreshJob      SessionRefreshJob
	AuthService     ClientAuthService
	ProfileService  ClientProfileService
	SettingsService ClientSettingsService
	Dashboard       ClientDashboardService
}

// NewClientServices wires the client services. The server adapter doubles as
// the dashboard's record store and file uploader.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientDashboard, logger *logger.Logger) *ClientServices {
	validator := validators.NewValidator()
	notifier := NewChannelNotifier(0, logger)
	sessionSvc := NewClientSessionService(localStore.Preferences, serverAdapter, logger)

	return &ClientServices{
		Notifier:        notifier,
		SessionService:  sessionSvc,
		RefreshJob:      NewSessionRefreshJob(sessionSvc, logger),
		AuthService:     NewClientAuthService(serverAdapter, sessionSvc, validator),
		ProfileService:  NewClientProfileService(serverAdapter, sessionSvc, validator),
		SettingsService: NewClientSettingsService(localStore.Preferences, validator, logger),
		Dashboard: NewClientDashboardService(
			sessionSvc, serverAdapter, serverAdapter, localStore.Preferences,
			notifier, validator, cfg, logger,
		),
	}
}
