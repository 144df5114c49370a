// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (email and password) and dispatches an async login command on
// form submission. On success a [LoginResult] message is produced and
// handled by [RootModel] to finish the authentication flow.
//
// When the server reports an unconfirmed address, ctrl+r asks it to send the
// verification letter again.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form        inputForm
	submitting  bool
	unconfirmed bool
	errMsg      string
	status      string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			newInput("email", 255, false),
			newInput("password", 256, true),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			m.unconfirmed = errors.Is(msg.Err, service.ErrEmailNotConfirmed)
		}
		return m, nil
	case resendResult:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Письмо отправлено повторно, проверьте почту"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.resend):
			if !m.unconfirmed || m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdResend(m.form.value(0))
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := m.form.value(0)
			pass := m.form.raw(1)
			if email == "" || pass == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.unconfirmed = false
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.rows("Email", "Пароль"))
	b.WriteString(submitLine("Войти", m.submitting))

	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}
	b.WriteString(errorLine(m.errMsg))

	hotKeys := "esc: назад │ tab: след. поле │ enter: подтвердить"
	if m.unconfirmed {
		hotKeys += " │ ctrl+r: отправить письмо"
	}
	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.Credentials{Email: email, Password: pass})
		if err != nil && !session.IsZero() {
			// signed in; only saving the session for the next start failed
			err = nil
		}
		return LoginResult{Err: err, Session: session}
	}
}

func (m *LoginModel) cmdResend(email string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return resendResult{err: auth.ResendVerification(ctx, email)}
	}
}
