// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	uploadPathField  = 0
	uploadTitleField = 1
)

// UploadModel uploads a PDF from disk into the selected subject. The title
// follows the file name until the user edits it.
type UploadModel struct {
	ctx  context.Context
	dash service.ClientDashboardService

	form        inputForm
	titleEdited bool
	submitting  bool
	errMsg      string
}

func NewUploadModel(ctx context.Context, dash service.ClientDashboardService) *UploadModel {
	return &UploadModel{
		ctx:  ctx,
		dash: dash,
		form: newInputForm(
			newInput("~/Documents/lecture.pdf", 0, false),
			newInput("title", 200, false),
		),
	}
}

func (m *UploadModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(documentUploadedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageDashboard, Payload: statusMsg{text: "Документ загружен: " + result.document.Title}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			path := m.form.value(uploadPathField)
			title := m.form.value(uploadTitleField)
			if path == "" || title == "" {
				m.errMsg = "Укажите файл и название"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUpload(path, title)
		}
	}

	before := m.form.raw(m.form.focus)
	cmd := m.form.update(msg)
	if ok && m.form.raw(m.form.focus) != before {
		switch m.form.focus {
		case uploadTitleField:
			m.titleEdited = m.form.raw(uploadTitleField) != ""
		case uploadPathField:
			if !m.titleEdited {
				m.form.set(uploadTitleField, models.TitleFromFileName(m.form.raw(uploadPathField)))
			}
		}
	}
	return m, cmd
}

func (m *UploadModel) View() string {
	var b strings.Builder
	if subject, ok := m.dash.State().SelectedSubject(); ok {
		b.WriteString("Предмет: " + subject.Name + "\n\n")
	}
	b.WriteString(m.form.rows("Файл (PDF)", "Название"))
	b.WriteString(submitLine("Загрузить", m.submitting))
	b.WriteString(errorLine(m.errMsg))

	return renderPage("ЗАГРУЗКА ДОКУМЕНТА", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: загрузить")
}

func (m *UploadModel) cmdUpload(path, title string) tea.Cmd {
	ctx := m.ctx
	dash := m.dash

	return func() tea.Msg {
		file, err := readUploadFile(path)
		if err != nil {
			return documentUploadedMsg{err: err}
		}
		document, err := dash.UploadDocument(ctx, title, file)
		return documentUploadedMsg{document: document, err: err}
	}
}

func (m *UploadModel) resetForm() {
	m.form.reset()
	m.titleEdited = false
	m.submitting = false
	m.errMsg = ""
}

// readUploadFile loads path (a leading "~" means the home directory) and
// sniffs its content type.
func readUploadFile(path string) (models.File, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.File{}, fmt.Errorf("не удалось прочитать файл: %w", err)
	}

	return models.File{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(content),
		Content:     content,
	}, nil
}
