package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/internal/advice"
	"github.com/trackwise/trackwise/internal/browser"
	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

// readmeMsg carries a generated README back to the projects tab.
type readmeMsg struct {
	md  string
	err error
}

// projectsModel is the project list tab. enter drills into a detail view
// with the feature checklist; g generates README content to the clipboard.
type projectsModel struct {
	store   *store.Store
	advisor *advice.Advisor

	cursor     int
	detail     bool
	featCursor int
	generating bool
	width      int
	height     int
}

func newProjectsModel(st *store.Store, advisor *advice.Advisor) projectsModel {
	return projectsModel{store: st, advisor: advisor}
}

func (m *projectsModel) focusOn(id string) {
	for i, p := range m.store.Projects() {
		if p.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m projectsModel) Update(msg tea.Msg) (projectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case readmeMsg:
		m.generating = false
		if msg.err != nil {
			return m, flashCmd(msg.err.Error(), true)
		}
		if err := clipboard.WriteAll(msg.md); err != nil {
			return m, flashCmd("README generated but clipboard unavailable", true)
		}
		return m, flashCmd("README copied to clipboard", false)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m projectsModel) handleKey(msg tea.KeyMsg) (projectsModel, tea.Cmd) {
	items := m.store.Projects()
	m.cursor = clampCursor(m.cursor, len(items))

	if m.detail {
		return m.handleDetailKey(msg, items)
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if len(items) > 0 {
			m.detail = true
			m.featCursor = 0
		}
	case "n":
		return m, func() tea.Msg { return openEditorMsg{kind: domain.KindProject} }
	case "e":
		if len(items) > 0 {
			p := items[m.cursor]
			return m, func() tea.Msg { return openEditorMsg{kind: domain.KindProject, record: p} }
		}
	case "d":
		if len(items) > 0 {
			p := items[m.cursor]
			return m, func() tea.Msg {
				return requestDeleteMsg{kind: domain.KindProject, id: p.ID, name: p.Title}
			}
		}
	case "s":
		if len(items) > 0 {
			p := items[m.cursor]
			next := domain.NextStatus(domain.KindProject, p.Status)
			m.store.PatchStatus(domain.KindProject, p.ID, next)
		}
	case "o":
		if len(items) > 0 {
			url := firstURL(items[m.cursor].RepoURL, items[m.cursor].DemoURL)
			if url == "" {
				return m, flashCmd("no link on this project", true)
			}
			browser.Open(url) //nolint:errcheck // best-effort browser open
		}
	case "c":
		if len(items) > 0 {
			url := firstURL(items[m.cursor].RepoURL, items[m.cursor].DemoURL)
			if url == "" {
				return m, flashCmd("no link to copy", true)
			}
			if err := clipboard.WriteAll(url); err != nil {
				return m, flashCmd("clipboard unavailable", true)
			}
			return m, flashCmd("link copied", false)
		}
	case "g":
		return m.generateReadme(items)
	}
	return m, nil
}

func (m projectsModel) handleDetailKey(msg tea.KeyMsg, items []domain.Project) (projectsModel, tea.Cmd) {
	p := items[m.cursor]
	// An edit from the detail view can shrink the feature list under the
	// cursor, so re-clamp before indexing.
	m.featCursor = clampCursor(m.featCursor, len(p.Features))

	switch msg.String() {
	case "esc", "enter":
		m.detail = false
	case "j", "down":
		if m.featCursor < len(p.Features)-1 {
			m.featCursor++
		}
	case "k", "up":
		if m.featCursor > 0 {
			m.featCursor--
		}
	case " ", "space":
		if len(p.Features) > 0 {
			feats := make([]domain.Feature, len(p.Features))
			copy(feats, p.Features)
			feats[m.featCursor].Completed = !feats[m.featCursor].Completed
			p.Features = feats
			m.store.UpsertProject(p)
		}
	case "e":
		return m, func() tea.Msg { return openEditorMsg{kind: domain.KindProject, record: p} }
	case "s":
		next := domain.NextStatus(domain.KindProject, p.Status)
		m.store.PatchStatus(domain.KindProject, p.ID, next)
	case "g":
		return m.generateReadme(items)
	}
	return m, nil
}

func (m projectsModel) generateReadme(items []domain.Project) (projectsModel, tea.Cmd) {
	if len(items) == 0 {
		return m, nil
	}
	if m.generating {
		return m, nil
	}
	if m.advisor == nil {
		return m, flashCmd("set GEMINI_API_KEY to generate READMEs", true)
	}
	p := items[m.cursor]
	advisor := m.advisor
	m.generating = true
	return m, func() tea.Msg {
		md, err := advisor.Readme(context.Background(), p.Title, p.Description)
		return readmeMsg{md: md, err: err}
	}
}

func (m projectsModel) View() string {
	items := m.store.Projects()
	cursor := clampCursor(m.cursor, len(items))

	if len(items) == 0 {
		return "\n " + dimStyle.Render("no projects yet — press n to start one") + "\n"
	}
	if m.detail {
		return m.detailView(items[cursor])
	}

	var b strings.Builder
	for i, p := range items {
		marker := " "
		titleStyle := normalStyle
		if i == cursor {
			marker = accentStyle.Render("▸")
			titleStyle = selectedStyle
		}

		row := fmt.Sprintf(" %s %s  %s  %s %s", marker,
			titleStyle.Render(fmt.Sprintf("%-24s", truncStr(p.Title, 24))),
			statusBadge(domain.KindProject, p.Status),
			progressBar(p.Progress, 12),
			metaStyle.Render(fmt.Sprintf("%3d%%", p.Progress)))
		if len(p.Features) > 0 {
			row += "  " + metaStyle.Render(fmt.Sprintf("%d/%d features", p.CompletedFeatures(), len(p.Features)))
		}
		b.WriteString(row + "\n")
	}

	p := items[cursor]
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(" " + dimStyle.Render(truncStr(p.Description, 76)) + "\n")
	}
	if !p.TechStack.Empty() {
		b.WriteString(" " + stackSummary(p.TechStack) + "\n")
	}
	if m.generating {
		b.WriteString(" " + dimStyle.Render("generating README...") + "\n")
	}
	return b.String()
}

func (m projectsModel) detailView(p domain.Project) string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render(p.Title) + "  " + statusBadge(domain.KindProject, p.Status) + "\n")
	b.WriteString(" " + progressBar(p.Progress, 24) + " " + metaStyle.Render(fmt.Sprintf("%d%%", p.Progress)) + "\n")
	if p.Type != "" {
		b.WriteString(" " + metaStyle.Render(p.Type) + "\n")
	}
	if p.Description != "" {
		b.WriteString("\n " + dimStyle.Render(p.Description) + "\n")
	}
	if !p.TechStack.Empty() {
		b.WriteString(" " + stackSummary(p.TechStack) + "\n")
	}
	if url := firstURL(p.RepoURL, p.DemoURL, p.DesignURL); url != "" {
		b.WriteString(" " + linkStyle.Render(truncStr(url, 70)) + "\n")
	}

	b.WriteString("\n " + metaStyle.Render(fmt.Sprintf("features (%d/%d)", p.CompletedFeatures(), len(p.Features))) + "\n")
	if len(p.Features) == 0 {
		b.WriteString(" " + dimStyle.Render("none — edit the project to add some") + "\n")
	}
	for i, f := range p.Features {
		marker := " "
		textStyle := dimStyle
		if i == m.featCursor {
			marker = accentStyle.Render("▸")
			textStyle = selectedStyle
		}
		box := dimStyle.Render("[ ]")
		if f.Completed {
			box = okStyle.Render("[x]")
		}
		fmt.Fprintf(&b, " %s %s %s\n", marker, box, textStyle.Render(truncStr(f.Text, 60)))
	}

	if p.Learnings != "" {
		b.WriteString("\n " + metaStyle.Render("learnings ") + dimStyle.Render(truncStr(p.Learnings, 70)) + "\n")
	}
	if m.generating {
		b.WriteString("\n " + dimStyle.Render("generating README...") + "\n")
	}
	return b.String()
}

func (m projectsModel) helpKeys() string {
	if m.detail {
		return helpEntry("j/k", "nav") + "  " + helpEntry("space", "toggle") + "  " + helpEntry("e", "edit") + "  " + helpEntry("s", "status") + "  " + helpEntry("g", "readme") + "  " + helpEntry("esc", "back")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "detail") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("s", "status") + "  " + helpEntry("g", "readme") + "  " + helpEntry("d", "delete") + "  " + helpEntry("q", "quit")
}
