package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// VerifyModel confirms an email address with the token from the letter.
type VerifyModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

func NewVerifyModel(ctx context.Context, auth service.ClientAuthService) *VerifyModel {
	return &VerifyModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(newInput("token", 0, false)),
	}
}

func (m *VerifyModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *VerifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(verifyResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: statusMsg{text: "Email подтверждён, можно войти"}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			token := m.form.value(0)
			if token == "" {
				m.errMsg = "Вставьте токен из письма"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdVerify(token)
		}
	}

	return m, m.form.update(msg)
}

func (m *VerifyModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.rows("Токен"))
	b.WriteString(submitLine("Подтвердить", m.submitting))
	b.WriteString(errorLine(m.errMsg))

	return renderPage("ПОДТВЕРЖДЕНИЕ EMAIL", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: подтвердить")
}

func (m *VerifyModel) cmdVerify(token string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return verifyResult{err: auth.VerifyEmail(ctx, token)}
	}
}
