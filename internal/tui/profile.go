package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel shows and edits the signed-in user's username and email.
type ProfileModel struct {
	ctx     context.Context
	profile service.ClientProfileService

	form       inputForm
	loaded     models.Profile
	loading    bool
	submitting bool
	status     string
	errMsg     string
}

func NewProfileModel(ctx context.Context, profile service.ClientProfileService) *ProfileModel {
	return &ProfileModel{
		ctx:     ctx,
		profile: profile,
		form: newInputForm(
			newInput("username", 50, false),
			newInput("email", 255, false),
		),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""

	ctx := m.ctx
	svc := m.profile
	return func() tea.Msg {
		p, err := svc.Get(ctx)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.fill(msg.profile)
		return m, nil
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.fill(msg.profile)
		m.errMsg = ""
		m.status = "Профиль сохранён"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting || m.loading {
				return m, nil
			}
			updated := m.loaded
			updated.Username = m.form.value(0)
			updated.Email = m.form.value(1)
			if updated.Username == "" || updated.Email == "" {
				m.errMsg = "Имя пользователя и email обязательны"
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.submitting = true

			ctx := m.ctx
			svc := m.profile
			return m, func() tea.Msg {
				p, err := svc.Update(ctx, updated)
				return profileSavedMsg{profile: p, err: err}
			}
		}
	}

	if m.loading {
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *ProfileModel) View() string {
	if m.loading {
		return renderPage("ПРОФИЛЬ", "Загрузка...", "esc: назад")
	}

	var b strings.Builder
	b.WriteString(m.form.rows("Имя пользователя", "Email"))
	b.WriteString("\nЗарегистрирован: " + formatDate(m.loaded.CreatedAt) + "\n")
	b.WriteString(submitLine("Сохранить", m.submitting))
	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}
	b.WriteString(errorLine(m.errMsg))

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

func (m *ProfileModel) fill(p models.Profile) {
	m.loaded = p
	m.form.set(0, p.Username)
	m.form.set(1, p.Email)
}
