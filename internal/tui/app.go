package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/trackwise/trackwise/internal/advice"
	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

type view int

const (
	viewDashboard view = iota
	viewHackathons
	viewProjects
	viewInternships
	viewCalendar
	viewInsights
)

// openEditorMsg opens the record editor overlay. A nil record means create.
type openEditorMsg struct {
	kind   domain.Kind
	record any
}

// recordSavedMsg carries a validated record out of the editor.
type recordSavedMsg struct {
	kind   domain.Kind
	record any
}

// requestDeleteMsg opens the delete confirmation overlay.
type requestDeleteMsg struct {
	kind domain.Kind
	id   string
	name string
}

// flashMsg sets a transient status line under the tab bar.
type flashMsg struct {
	text string
	err  bool
}

// App is the root Bubbletea model.
type App struct {
	store   *store.Store
	advisor *advice.Advisor
	log     *zap.Logger

	view        view
	dashboard   dashboardModel
	hackathons  hackathonsModel
	projects    projectsModel
	internships internshipsModel
	calendar    calendarModel
	insights    insightsModel

	editor      editorModel
	editorOpen  bool
	confirm     confirmModel
	confirmOpen bool

	flash    string
	flashErr bool
	width    int
	height   int
}

// NewApp creates the TUI application. advisor may be nil when no API key is
// configured; insight tips fall back to the built-in list.
func NewApp(st *store.Store, advisor *advice.Advisor, log *zap.Logger) App {
	return App{
		store:       st,
		advisor:     advisor,
		log:         log,
		dashboard:   newDashboardModel(st),
		hackathons:  newHackathonsModel(st),
		projects:    newProjectsModel(st, advisor),
		internships: newInternshipsModel(st),
		calendar:    newCalendarModel(st),
		insights:    newInsightsModel(st, advisor),
	}
}

func (a App) Init() tea.Cmd {
	return a.dashboard.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + flash(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.hackathons, _ = a.hackathons.Update(bodyMsg)
		a.projects, _ = a.projects.Update(bodyMsg)
		a.internships, _ = a.internships.Update(bodyMsg)
		a.calendar, _ = a.calendar.Update(bodyMsg)
		a.insights, _ = a.insights.Update(bodyMsg)
		a.editor, _ = a.editor.Update(bodyMsg)

	case openEditorMsg:
		a.editor = newEditor(msg.kind, msg.record)
		a.editorOpen = true
		a.flash = ""
		return a, a.editor.Init()

	case recordSavedMsg:
		a.applySave(msg)
		a.editorOpen = false
		return a, flashCmd(fmt.Sprintf("%s saved", msg.kind.Title()), false)

	case requestDeleteMsg:
		a.confirm = newConfirmModel(msg.kind, msg.id, msg.name)
		a.confirmOpen = true
		return a, nil

	case flashMsg:
		a.flash = msg.text
		a.flashErr = msg.err
		return a, nil

	case tea.KeyMsg:
		a.flash = ""

		if a.editorOpen {
			if msg.String() == "esc" {
				a.editorOpen = false
				return a, nil
			}
			var cmd tea.Cmd
			a.editor, cmd = a.editor.Update(msg)
			return a, cmd
		}

		if a.confirmOpen {
			switch msg.String() {
			case "y", "Y":
				a.store.Remove(a.confirm.kind, a.confirm.id)
				a.confirmOpen = false
				return a, flashCmd(fmt.Sprintf("%s deleted", a.confirm.kind.Title()), false)
			case "n", "N", "esc":
				a.confirmOpen = false
			}
			return a, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			return a.switchTo(viewDashboard, a.dashboard.Init())
		case "2":
			return a.switchTo(viewHackathons, nil)
		case "3":
			return a.switchTo(viewProjects, nil)
		case "4":
			return a.switchTo(viewInternships, nil)
		case "5":
			return a.switchTo(viewCalendar, nil)
		case "6":
			if a.view != viewInsights {
				a.view = viewInsights
				if a.insights.tips == nil && !a.insights.loading {
					var cmd tea.Cmd
					a.insights, cmd = a.insights.fetch()
					return a, cmd
				}
			}
			return a, nil
		}
	}

	if a.editorOpen {
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.view {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case viewHackathons:
		a.hackathons, cmd = a.hackathons.Update(msg)
	case viewProjects:
		a.projects, cmd = a.projects.Update(msg)
	case viewInternships:
		a.internships, cmd = a.internships.Update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.Update(msg)
	case viewInsights:
		a.insights, cmd = a.insights.Update(msg)
	}
	return a, cmd
}

func (a App) switchTo(v view, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if a.view == v {
		return a, nil
	}
	a.view = v
	return a, cmd
}

// applySave persists a record coming out of the editor.
func (a *App) applySave(msg recordSavedMsg) {
	switch r := msg.record.(type) {
	case domain.Hackathon:
		stored := a.store.UpsertHackathon(r)
		a.hackathons.focusOn(stored.ID)
	case domain.Project:
		stored := a.store.UpsertProject(r)
		a.projects.focusOn(stored.ID)
	case domain.Internship:
		stored := a.store.UpsertInternship(r)
		a.internships.focusOn(stored.ID)
	default:
		a.log.Warn("editor produced unknown record type")
	}
}

// flashCmd emits a transient status line.
func flashCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return flashMsg{text: text, err: isErr}
	}
}

func (a App) View() string {
	logo := renderLogo()
	logoPad := (a.width - lipgloss.Width(logo)) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	st := a.store.State()
	counts := metaStyle.Render(fmt.Sprintf("%d hackathons · %d projects · %d internships",
		len(st.Hackathons), len(st.Projects), len(st.Internships)))
	countsPad := (a.width - lipgloss.Width(counts)) / 2
	if countsPad < 0 {
		countsPad = 0
	}
	header += "\n" + strings.Repeat(" ", countsPad) + counts

	// Tab bar: 6 equal-width columns spread across terminal
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Dashboard", viewDashboard},
		{"2", "Hackathons", viewHackathons},
		{"3", "Projects", viewProjects},
		{"4", "Internships", viewInternships},
		{"5", "Calendar", viewCalendar},
		{"6", "Insights", viewInsights},
	}
	colWidth := 0
	if len(tabs) > 0 && a.width > 0 {
		colWidth = a.width / len(tabs)
	}
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body, help string
	switch a.view {
	case viewDashboard:
		body = a.dashboard.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + helpEntry("q", "quit")
	case viewHackathons:
		body = a.hackathons.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.hackathons.helpKeys()
	case viewProjects:
		body = a.projects.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.projects.helpKeys()
	case viewInternships:
		body = a.internships.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.internships.helpKeys()
	case viewCalendar:
		body = a.calendar.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + helpEntry("h/l", "month") + "  " + helpEntry("j/k", "events") + "  " + helpEntry("enter", "detail") + "  " + helpEntry("t", "today") + "  " + helpEntry("q", "quit")
	case viewInsights:
		body = a.insights.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("q", "quit")
	}

	if a.editorOpen {
		body = a.editor.View()
		help = " " + helpEntry("tab", "next") + "  " + helpEntry("h/l", "cycle") + "  " + helpEntry("space", "toggle") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	}
	if a.confirmOpen {
		body = a.confirm.View()
		help = " " + helpEntry("y", "delete") + "  " + helpEntry("n", "keep")
	}

	flashLine := ""
	if a.flash != "" {
		style := okStyle
		if a.flashErr {
			style = errorStyle
		}
		flashLine = " " + style.Render(a.flash)
	}

	// Chrome: header(2) + tabs(1) + flash(1) + help(1) = 5 lines + body
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, tabBar.String(), body, flashLine, help)
}
