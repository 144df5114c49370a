package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsRow struct {
	label  string
	render func(s models.Settings) string
	toggle func(s *models.Settings)
}

var settingsRows = []settingsRow{
	{"Уведомления на email", func(s models.Settings) string { return checkbox(s.EmailNotifications) },
		func(s *models.Settings) { s.EmailNotifications = !s.EmailNotifications }},
	{"Push-уведомления", func(s models.Settings) string { return checkbox(s.PushNotifications) },
		func(s *models.Settings) { s.PushNotifications = !s.PushNotifications }},
	{"Публичный профиль", func(s models.Settings) string { return checkbox(s.ProfilePublic) },
		func(s *models.Settings) { s.ProfilePublic = !s.ProfilePublic }},
	{"Показывать email", func(s models.Settings) string { return checkbox(s.ShowEmail) },
		func(s *models.Settings) { s.ShowEmail = !s.ShowEmail }},
	{"Тема", func(s models.Settings) string { return "<" + s.Theme + ">" },
		func(s *models.Settings) {
			if s.Theme == models.ThemeDark {
				s.Theme = models.ThemeLight
			} else {
				s.Theme = models.ThemeDark
			}
		}},
}

// SettingsModel edits the device-local preferences.
type SettingsModel struct {
	ctx      context.Context
	settings service.ClientSettingsService

	current models.Settings
	idx     int
	loading bool
	saving  bool
	dirty   bool
	status  string
	errMsg  string
}

func NewSettingsModel(ctx context.Context, settings service.ClientSettingsService) *SettingsModel {
	return &SettingsModel{ctx: ctx, settings: settings, current: models.DefaultSettings()}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""

	ctx := m.ctx
	svc := m.settings
	return func() tea.Msg {
		s, err := svc.Load(ctx)
		return settingsLoadedMsg{settings: s, err: err}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		m.loading = false
		m.dirty = false
		m.current = msg.settings
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case settingsSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.dirty = false
		m.errMsg = ""
		m.status = "Настройки сохранены"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	case key.Matches(keyMsg, keys.up):
		m.idx = clampIndex(m.idx-1, len(settingsRows))
	case key.Matches(keyMsg, keys.down):
		m.idx = clampIndex(m.idx+1, len(settingsRows))
	case key.Matches(keyMsg, keys.toggle):
		settingsRows[m.idx].toggle(&m.current)
		m.dirty = true
		m.status = ""
	case key.Matches(keyMsg, keys.enter):
		if m.saving {
			return m, nil
		}
		m.saving = true
		ctx := m.ctx
		svc := m.settings
		s := m.current
		return m, func() tea.Msg { return settingsSavedMsg{err: svc.Save(ctx, s)} }
	}

	return m, nil
}

func (m *SettingsModel) View() string {
	if m.loading {
		return renderPage("НАСТРОЙКИ", "Загрузка...", "esc: назад")
	}

	width := 0
	for _, row := range settingsRows {
		if n := len([]rune(row.label)); n > width {
			width = n
		}
	}

	var b strings.Builder
	for i, row := range settingsRows {
		b.WriteString(cursor(i == m.idx) + " " + padRight(row.label, width) + " │ " + row.render(m.current) + "\n")
	}

	label := "Сохранить"
	if m.dirty {
		label += " *"
	}
	b.WriteString(submitLine(label, m.saving))
	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}
	b.WriteString(errorLine(m.errMsg))

	return renderPage("НАСТРОЙКИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ ↑/↓: навигация │ пробел: переключить │ enter: сохранить")
}
