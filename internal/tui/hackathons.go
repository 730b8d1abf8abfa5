package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/internal/browser"
	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

// hackathonsModel is the hackathon list tab. Rows read the store directly;
// edits go through the editor overlay owned by the root model.
type hackathonsModel struct {
	store  *store.Store
	cursor int
	width  int
	height int
}

func newHackathonsModel(st *store.Store) hackathonsModel {
	return hackathonsModel{store: st}
}

func (m *hackathonsModel) focusOn(id string) {
	for i, h := range m.store.Hackathons() {
		if h.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m hackathonsModel) Update(msg tea.Msg) (hackathonsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m hackathonsModel) handleKey(msg tea.KeyMsg) (hackathonsModel, tea.Cmd) {
	items := m.store.Hackathons()
	m.cursor = clampCursor(m.cursor, len(items))

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "n":
		return m, func() tea.Msg { return openEditorMsg{kind: domain.KindHackathon} }
	case "e", "enter":
		if len(items) > 0 {
			h := items[m.cursor]
			return m, func() tea.Msg { return openEditorMsg{kind: domain.KindHackathon, record: h} }
		}
	case "d":
		if len(items) > 0 {
			h := items[m.cursor]
			return m, func() tea.Msg {
				return requestDeleteMsg{kind: domain.KindHackathon, id: h.ID, name: h.Name}
			}
		}
	case "s":
		if len(items) > 0 {
			h := items[m.cursor]
			next := domain.NextStatus(domain.KindHackathon, h.Status)
			m.store.PatchStatus(domain.KindHackathon, h.ID, next)
		}
	case "o":
		if len(items) > 0 {
			url := firstURL(items[m.cursor].RepoURL, items[m.cursor].DemoURL)
			if url == "" {
				return m, flashCmd("no link on this hackathon", true)
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
	}
	return m, nil
}

// firstURL returns the first non-empty url.
func firstURL(urls ...string) string {
	for _, u := range urls {
		if u != "" {
			return u
		}
	}
	return ""
}

func (m hackathonsModel) View() string {
	var b strings.Builder
	items := m.store.Hackathons()
	cursor := clampCursor(m.cursor, len(items))

	if len(items) == 0 {
		b.WriteString("\n " + dimStyle.Render("no hackathons yet — press n to register one") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, h := range items {
		marker := " "
		nameStyle := normalStyle
		if i == cursor {
			marker = accentStyle.Render("▸")
			nameStyle = selectedStyle
		}

		deadline := metaStyle.Render("no deadline")
		if h.Deadline != "" {
			deadline = dimStyle.Render(formatDate(h.Deadline))
			if rel := daysUntil(h.Deadline, now); rel != "" {
				deadline += " " + metaStyle.Render("("+rel+")")
			}
		}

		row := fmt.Sprintf(" %s %s  %s  %s", marker,
			nameStyle.Render(fmt.Sprintf("%-24s", truncStr(h.Name, 24))),
			statusBadge(domain.KindHackathon, h.Status),
			deadline)
		if h.Mode != "" {
			row += "  " + metaStyle.Render(h.Mode)
		}
		b.WriteString(row + "\n")
	}

	// Detail block for the selected entry
	h := items[cursor]
	b.WriteString("\n")
	if h.Organizer != "" || h.TeamType != "" {
		meta := []string{}
		if h.Organizer != "" {
			meta = append(meta, "by "+h.Organizer)
		}
		if h.TeamType != "" {
			meta = append(meta, h.TeamType)
		}
		if h.Theme != "" {
			meta = append(meta, "theme: "+h.Theme)
		}
		b.WriteString(" " + dimStyle.Render(strings.Join(meta, " · ")) + "\n")
	}
	if h.StartDate != "" {
		span := formatDate(h.StartDate)
		if h.EndDate != "" {
			span += " → " + formatDate(h.EndDate)
		}
		b.WriteString(" " + metaStyle.Render("runs ") + dimStyle.Render(span) + "\n")
	}
	if !h.TechStack.Empty() {
		b.WriteString(" " + stackSummary(h.TechStack) + "\n")
	}
	if url := firstURL(h.RepoURL, h.DemoURL); url != "" {
		b.WriteString(" " + linkStyle.Render(truncStr(url, 70)) + "\n")
	}
	if h.Notes != "" {
		b.WriteString(" " + dimStyle.Render(truncStr(h.Notes, 76)) + "\n")
	}

	return b.String()
}

func (m hackathonsModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("s", "status") + "  " + helpEntry("o", "open") + "  " + helpEntry("c", "copy") + "  " + helpEntry("d", "delete") + "  " + helpEntry("q", "quit")
}
