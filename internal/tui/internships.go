package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

// internshipsModel is the internship application list tab.
type internshipsModel struct {
	store  *store.Store
	cursor int
	width  int
	height int
}

func newInternshipsModel(st *store.Store) internshipsModel {
	return internshipsModel{store: st}
}

func (m *internshipsModel) focusOn(id string) {
	for i, in := range m.store.Internships() {
		if in.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m internshipsModel) Update(msg tea.Msg) (internshipsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m internshipsModel) handleKey(msg tea.KeyMsg) (internshipsModel, tea.Cmd) {
	items := m.store.Internships()
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
		return m, func() tea.Msg { return openEditorMsg{kind: domain.KindInternship} }
	case "e", "enter":
		if len(items) > 0 {
			in := items[m.cursor]
			return m, func() tea.Msg { return openEditorMsg{kind: domain.KindInternship, record: in} }
		}
	case "d":
		if len(items) > 0 {
			in := items[m.cursor]
			return m, func() tea.Msg {
				return requestDeleteMsg{kind: domain.KindInternship, id: in.ID, name: in.Company}
			}
		}
	case "s":
		if len(items) > 0 {
			in := items[m.cursor]
			next := domain.NextStatus(domain.KindInternship, in.Status)
			m.store.PatchStatus(domain.KindInternship, in.ID, next)
		}
	}
	return m, nil
}

func (m internshipsModel) View() string {
	var b strings.Builder
	items := m.store.Internships()
	cursor := clampCursor(m.cursor, len(items))

	if len(items) == 0 {
		b.WriteString("\n " + dimStyle.Render("no applications yet — press n to track one") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, in := range items {
		marker := " "
		nameStyle := normalStyle
		if i == cursor {
			marker = accentStyle.Render("▸")
			nameStyle = selectedStyle
		}

		row := fmt.Sprintf(" %s %s %s  %s", marker,
			nameStyle.Render(fmt.Sprintf("%-18s", truncStr(in.Company, 18))),
			dimStyle.Render(fmt.Sprintf("%-20s", truncStr(in.Role, 20))),
			statusBadge(domain.KindInternship, in.Status))
		if in.AppliedDate != "" {
			row += "  " + metaStyle.Render("applied "+formatDate(in.AppliedDate))
		}
		b.WriteString(row + "\n")
	}

	// Detail block for the selected entry
	in := items[cursor]
	b.WriteString("\n")
	meta := []string{}
	if in.Location != "" {
		meta = append(meta, in.Location)
	}
	if in.Platform != "" {
		meta = append(meta, "via "+in.Platform)
	}
	if in.IsPaid {
		paid := "paid"
		if in.Stipend != "" {
			paid += " · " + in.Stipend
		}
		meta = append(meta, paid)
	} else {
		meta = append(meta, "unpaid")
	}
	if in.ResumeVersion != "" {
		meta = append(meta, "resume "+in.ResumeVersion)
	}
	b.WriteString(" " + dimStyle.Render(strings.Join(meta, " · ")) + "\n")

	if len(in.InterviewDates) > 0 {
		dates := make([]string, len(in.InterviewDates))
		for i, d := range in.InterviewDates {
			dates[i] = formatDate(d)
			if rel := daysUntil(d, now); rel != "" {
				dates[i] += " (" + rel + ")"
			}
		}
		b.WriteString(" " + metaStyle.Render("interviews ") + dimStyle.Render(strings.Join(dates, ", ")) + "\n")
	}
	if in.Notes != "" {
		b.WriteString(" " + dimStyle.Render(truncStr(in.Notes, 76)) + "\n")
	}

	return b.String()
}

func (m internshipsModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("s", "status") + "  " + helpEntry("d", "delete") + "  " + helpEntry("q", "quit")
}
