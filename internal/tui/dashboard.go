package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTTL = 3 * time.Second

type pane int

const (
	paneSubjects pane = iota
	paneDocuments
)

// clipboardWriter is swapped in tests.
var clipboardWriter = clipboard.WriteAll

// DashboardModel renders the semester switcher, the subjects of the selected
// semester and the documents of the selected subject. All state lives in
// [service.ClientDashboardService]; the model only keeps cursors and the
// status lines.
type DashboardModel struct {
	ctx     context.Context
	dash    service.ClientDashboardService
	notices <-chan models.Notification

	focus       pane
	subjectIdx  int
	documentIdx int

	listening bool
	busy      bool
	notice    models.Notification
	status    string
	errMsg    string
}

func NewDashboardModel(ctx context.Context, dash service.ClientDashboardService, notices <-chan models.Notification) *DashboardModel {
	return &DashboardModel{ctx: ctx, dash: dash, notices: notices}
}

// Init starts listening for notifications once; later calls (returning to
// the page) are no-ops.
func (m *DashboardModel) Init() tea.Cmd {
	if m.listening {
		return nil
	}
	m.listening = true
	return waitForNotice(m.notices)
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = msg.notification
		if msg.notification.Kind == models.NotificationAuthenticationRequired {
			return m, tea.Batch(waitForNotice(m.notices), func() tea.Msg { return LogoutRequested{} })
		}
		return m, waitForNotice(m.notices)
	case dashboardDoneMsg:
		m.busy = false
		m.setError(msg.err)
		m.clampCursors(m.dash.State())
		return m, nil
	case statusMsg:
		m.status = msg.text
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	state := m.dash.State()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, func() tea.Msg { return quitRequested{} }
	case key.Matches(keyMsg, keys.logout):
		return m, func() tea.Msg { return LogoutRequested{} }
	case key.Matches(keyMsg, keys.settings):
		return m, func() tea.Msg { return NavigateTo{Page: pageSettings} }
	case key.Matches(keyMsg, keys.profile):
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
	case key.Matches(keyMsg, keys.addSubject):
		return m, func() tea.Msg { return NavigateTo{Page: pageSubject} }
	case key.Matches(keyMsg, keys.upload):
		if !state.Selection.HasSubject() {
			m.errMsg = humanizeError(service.ErrNoSubjectSelected)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageUpload} }
	case key.Matches(keyMsg, keys.semester):
		return m, m.changeSemester(state, keyMsg.String())
	case key.Matches(keyMsg, keys.prevSemester):
		return m, m.changeSemester(state, shiftSemester(state.Selection.SelectedSemester, -1))
	case key.Matches(keyMsg, keys.nextSemester):
		return m, m.changeSemester(state, shiftSemester(state.Selection.SelectedSemester, 1))
	case key.Matches(keyMsg, keys.tab):
		if m.focus == paneSubjects {
			m.focus = paneDocuments
		} else {
			m.focus = paneSubjects
		}
	case key.Matches(keyMsg, keys.up):
		m.moveCursor(state, -1)
	case key.Matches(keyMsg, keys.down):
		m.moveCursor(state, 1)
	case key.Matches(keyMsg, keys.enter):
		if m.focus != paneSubjects || len(state.Subjects) == 0 {
			return m, nil
		}
		subjectID := state.Subjects[clampIndex(m.subjectIdx, len(state.Subjects))].ID
		m.focus = paneDocuments
		m.documentIdx = 0
		return m, m.run(func(ctx context.Context, dash service.ClientDashboardService) error {
			return dash.SelectSubject(ctx, subjectID)
		})
	case key.Matches(keyMsg, keys.reload):
		if m.focus == paneDocuments && state.Selection.HasSubject() {
			return m, m.run(func(ctx context.Context, dash service.ClientDashboardService) error {
				return dash.LoadDocuments(ctx)
			})
		}
		return m, m.run(func(ctx context.Context, dash service.ClientDashboardService) error {
			return dash.LoadSubjects(ctx)
		})
	case key.Matches(keyMsg, keys.copy):
		return m, m.copySelectedURL(state)
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	state := m.dash.State()

	var b strings.Builder
	b.WriteString(renderSemesters(state.Selection.SelectedSemester))
	b.WriteString("\n\n")

	subjects := m.renderSubjects(state)
	documents := m.renderDocuments(state)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, subjects, " ", documents))
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\nЗагрузка...")
	}
	if m.notice.Message != "" {
		style := noticeStyle
		if m.notice.IsFailure() {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render("Уведомление: "+m.notice.Message))
	}
	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render("Статус: "+m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg))
	}

	return renderPage(
		"УЧЕБНАЯ ПОЛКА",
		strings.TrimRight(b.String(), "\n"),
		"←/→, 1-8: семестр │ tab: панель │ enter: открыть │ a: предмет │ u: загрузить │ c: копировать ссылку │ r: обновить │ s: настройки │ p: профиль │ o: выйти",
	)
}

func (m *DashboardModel) renderSubjects(state models.ViewState) string {
	var b strings.Builder
	b.WriteString(paneTitle("Предметы", m.focus == paneSubjects))
	b.WriteString("\n")

	switch {
	case state.LoadingSubjects && len(state.Subjects) == 0:
		b.WriteString("Загрузка...")
	case len(state.Subjects) == 0:
		b.WriteString("Предметов нет")
	default:
		idx := clampIndex(m.subjectIdx, len(state.Subjects))
		for i, s := range state.Subjects {
			line := fmt.Sprintf("%s %s", cursor(m.focus == paneSubjects && i == idx), padRight(fitText(s.Name, 24), 24))
			if s.IsPublic {
				line += " общий"
			}
			if s.ID == state.Selection.SelectedSubjectID {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *DashboardModel) renderDocuments(state models.ViewState) string {
	var b strings.Builder
	title := "Документы"
	if subject, ok := state.SelectedSubject(); ok {
		title += ": " + fitText(subject.Name, 24)
	}
	b.WriteString(paneTitle(title, m.focus == paneDocuments))
	b.WriteString("\n")

	switch {
	case !state.Selection.HasSubject():
		b.WriteString("Выберите предмет")
	case state.LoadingDocuments && len(state.Documents) == 0:
		b.WriteString("Загрузка...")
	case len(state.Documents) == 0:
		b.WriteString("Документов нет")
	default:
		idx := clampIndex(m.documentIdx, len(state.Documents))
		for i, d := range state.Documents {
			b.WriteString(fmt.Sprintf("%s %s │ %s\n",
				cursor(m.focus == paneDocuments && i == idx),
				padRight(fitText(d.Title, 30), 30),
				formatDate(d.UploadDate),
			))
		}
	}

	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderSemesters(selected string) string {
	parts := make([]string, 0, len(models.ValidSemesters))
	for _, s := range models.ValidSemesters {
		if s == selected {
			parts = append(parts, selectedStyle.Render("["+s+"]"))
		} else {
			parts = append(parts, " "+s+" ")
		}
	}
	return "Семестр: " + strings.Join(parts, " ")
}

func paneTitle(title string, focused bool) string {
	if focused {
		return titleStyle.Render("▸ " + title)
	}
	return "  " + title
}

func (m *DashboardModel) changeSemester(state models.ViewState, semester string) tea.Cmd {
	if semester == "" || semester == state.Selection.SelectedSemester {
		return nil
	}
	m.focus = paneSubjects
	m.subjectIdx = 0
	m.documentIdx = 0
	return m.run(func(ctx context.Context, dash service.ClientDashboardService) error {
		return dash.ChangeSemester(ctx, semester)
	})
}

func (m *DashboardModel) moveCursor(state models.ViewState, delta int) {
	if m.focus == paneSubjects {
		m.subjectIdx = clampIndex(m.subjectIdx+delta, len(state.Subjects))
		return
	}
	m.documentIdx = clampIndex(m.documentIdx+delta, len(state.Documents))
}

func (m *DashboardModel) clampCursors(state models.ViewState) {
	m.subjectIdx = clampIndex(m.subjectIdx, len(state.Subjects))
	m.documentIdx = clampIndex(m.documentIdx, len(state.Documents))
}

func (m *DashboardModel) copySelectedURL(state models.ViewState) tea.Cmd {
	if len(state.Documents) == 0 {
		m.status = "Нечего копировать"
		return cmdClearStatus()
	}

	doc := state.Documents[clampIndex(m.documentIdx, len(state.Documents))]
	if err := clipboardWriter(doc.FileURL); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return nil
	}

	m.errMsg = ""
	m.status = "Ссылка скопирована: " + doc.Title
	return cmdClearStatus()
}

// setError shows err unless the dashboard already raised a notification for
// it: only local validation failures are reported here.
func (m *DashboardModel) setError(err error) {
	if err == nil || !errors.Is(err, service.ErrValidation) {
		m.errMsg = ""
		return
	}
	m.errMsg = humanizeError(err)
}

func (m *DashboardModel) run(call func(ctx context.Context, dash service.ClientDashboardService) error) tea.Cmd {
	ctx := m.ctx
	dash := m.dash
	m.busy = true
	m.errMsg = ""

	return func() tea.Msg {
		return dashboardDoneMsg{err: call(ctx, dash)}
	}
}

// waitForNotice blocks until the next notification. It returns nil once the
// channel is closed.
func waitForNotice(notices <-chan models.Notification) tea.Cmd {
	if notices == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-notices
		if !ok {
			return nil
		}
		return noticeMsg{notification: n}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func shiftSemester(current string, delta int) string {
	idx := slices.Index(models.ValidSemesters, current)
	if idx < 0 {
		return models.DefaultSemester
	}
	next := idx + delta
	if next < 0 || next >= len(models.ValidSemesters) {
		return ""
	}
	return models.ValidSemesters[next]
}

func clampIndex(idx, n int) int {
	if n <= 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
