package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SubjectFormModel adds a subject to the selected semester.
type SubjectFormModel struct {
	ctx  context.Context
	dash service.ClientDashboardService

	form        inputForm
	isPublic    bool
	focusToggle bool
	submitting  bool
	errMsg      string
}

func NewSubjectFormModel(ctx context.Context, dash service.ClientDashboardService) *SubjectFormModel {
	return &SubjectFormModel{
		ctx:  ctx,
		dash: dash,
		form: newInputForm(newInput("name", 100, false)),
	}
}

func (m *SubjectFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SubjectFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(subjectAddedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageDashboard, Payload: statusMsg{text: "Предмет добавлен: " + result.subject.Name}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.focusToggle = !m.focusToggle
			if m.focusToggle {
				m.form.inputs[0].Blur()
			} else {
				m.form.inputs[0].Focus()
			}
			return m, nil
		case m.focusToggle && key.Matches(keyMsg, keys.toggle):
			m.isPublic = !m.isPublic
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			name := m.form.value(0)
			if name == "" {
				m.errMsg = "Название обязательно"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdAdd(name, m.isPublic)
		}
	}

	if m.focusToggle {
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *SubjectFormModel) View() string {
	var b strings.Builder
	b.WriteString("Семестр: " + valueOrDash(m.dash.State().Selection.SelectedSemester) + "\n\n")
	b.WriteString(m.form.rows("Название"))
	b.WriteString(cursor(m.focusToggle) + " " + checkbox(m.isPublic) + " Общий доступ\n")
	b.WriteString(submitLine("Добавить", m.submitting))
	b.WriteString(errorLine(m.errMsg))

	return renderPage("НОВЫЙ ПРЕДМЕТ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ пробел: переключить │ enter: добавить")
}

func (m *SubjectFormModel) cmdAdd(name string, isPublic bool) tea.Cmd {
	ctx := m.ctx
	dash := m.dash

	return func() tea.Msg {
		subject, err := dash.AddSubject(ctx, name, isPublic)
		return subjectAddedMsg{subject: subject, err: err}
	}
}

func (m *SubjectFormModel) resetForm() {
	m.form.reset()
	m.isPublic = false
	m.focusToggle = false
	m.submitting = false
	m.errMsg = ""
}
