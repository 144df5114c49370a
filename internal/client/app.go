package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/tui"
)

var errNilDependency = errors.New("client app dependency is nil")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  BackgroundWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers BackgroundWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || workers == nil {
		return nil, errNilDependency
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger.WithComponent("client"),
	}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the dashboard follows every sign-in, sign-out and refresh
	unsubscribe := a.services.SessionService.OnSessionChange(a.services.Dashboard.HandleSessionChange)
	defer unsubscribe()

	if _, err := a.services.SessionService.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("failed to restore saved session")
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	for {
		if _, ok := a.services.SessionService.Current(); !ok {
			if err := a.ui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout finished with error")
		}
	}
}
