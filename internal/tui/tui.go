package tui

import (
	"context"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger.WithComponent("tui")}, nil
}

// LoginFlow runs the menu, login, register and verify pages until the user
// signs in. Returns ErrUserQuit when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
		pageVerify:   NewVerifyModel(ctx, t.services.AuthService),
	}

	result, err := t.run(NewRootModel(pages, pageMenu, t.buildInfo))
	if err != nil {
		return err
	}
	if result.quitByUser || !result.loggedIn {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the dashboard and its forms. logout reports whether the user
// asked to sign out (or the session ended) rather than quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	t.drainNotifications()

	dash := t.services.Dashboard
	pages := map[string]tea.Model{
		pageDashboard: NewDashboardModel(ctx, dash, t.services.Notifier.C()),
		pageSubject:   NewSubjectFormModel(ctx, dash),
		pageUpload:    NewUploadModel(ctx, dash),
		pageSettings:  NewSettingsModel(ctx, t.services.SettingsService),
		pageProfile:   NewProfileModel(ctx, t.services.ProfileService),
	}

	result, err := t.run(NewRootModel(pages, pageDashboard, t.buildInfo))
	if err != nil {
		return false, err
	}

	return result.logout, nil
}

func (t *TUI) run(root RootModel) (RootModel, error) {
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}

// drainNotifications drops sign-out notices left over from the previous
// session. Other pending notices are queued again for the dashboard.
func (t *TUI) drainNotifications() {
	var keep []models.Notification

	for {
		select {
		case n := <-t.services.Notifier.C():
			if n.Kind == models.NotificationAuthenticationRequired {
				t.logger.Debug().Str("kind", string(n.Kind)).Msg("dropping stale notification")
				continue
			}
			keep = append(keep, n)
		default:
			for _, n := range keep {
				t.services.Notifier.Notify(n)
			}
			return
		}
	}
}
