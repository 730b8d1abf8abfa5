package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/internal/schedule"
	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

// calendarModel is the month-grid tab showing hackathon deadlines and
// interview dates. j/k steps through the month's events; enter expands the
// selected event's record summary.
type calendarModel struct {
	store  *store.Store
	year   int
	month  time.Month
	cursor int // index into the shown month's events
	detail bool
	width  int
	height int
}

func newCalendarModel(st *store.Store) calendarModel {
	now := time.Now()
	return calendarModel{store: st, year: now.Year(), month: now.Month()}
}

// monthEvents filters the projected sequence to the shown month.
func (m calendarModel) monthEvents() []schedule.Event {
	all := schedule.Events(m.store.Hackathons(), m.store.Internships())
	var out []schedule.Event
	for _, e := range all {
		if e.Date.Year() == m.year && e.Date.Month() == m.month {
			out = append(out, e)
		}
	}
	return out
}

func (m calendarModel) Update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		events := m.monthEvents()
		m.cursor = clampCursor(m.cursor, len(events))
		switch msg.String() {
		case "h", "left":
			m.year, m.month = schedule.PrevMonth(m.year, m.month)
			m.cursor, m.detail = 0, false
		case "l", "right":
			m.year, m.month = schedule.NextMonth(m.year, m.month)
			m.cursor, m.detail = 0, false
		case "t":
			now := time.Now()
			m.year, m.month = now.Year(), now.Month()
			m.cursor, m.detail = 0, false
		case "j", "down":
			if m.cursor < len(events)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(events) > 0 {
				m.detail = !m.detail
			}
		case "esc":
			m.detail = false
		}
	}
	return m, nil
}

func (m calendarModel) View() string {
	var b strings.Builder

	events := schedule.Events(m.store.Hackathons(), m.store.Internships())
	today := time.Now()
	cells := schedule.Grid(m.year, m.month, events, today)
	monthEvents := m.monthEvents()
	cursor := clampCursor(m.cursor, len(monthEvents))

	selDay := 0
	if len(monthEvents) > 0 {
		selDay = monthEvents[cursor].Date.Day()
	}

	title := fmt.Sprintf("%s %d", m.month, m.year)
	b.WriteString(" " + accentStyle.Render(title) + "\n\n")
	b.WriteString(" " + metaStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	for row := 0; row < len(cells); row += 7 {
		b.WriteString(" ")
		for col := 0; col < 7 && row+col < len(cells); col++ {
			c := cells[row+col]
			if c.Day == 0 {
				b.WriteString("    ")
				continue
			}
			label := fmt.Sprintf("%3d", c.Day)
			switch {
			case c.Today:
				b.WriteString(todayStyle.Render(label))
			case c.Day == selDay && len(c.Events) > 0:
				b.WriteString(selectedStyle.Render(label))
			case len(c.Events) > 0:
				b.WriteString(eventDayStyle.Render(label))
			default:
				b.WriteString(dimStyle.Render(label))
			}
			if len(c.Events) > 0 {
				b.WriteString(eventDayStyle.Render("•"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(monthEvents) == 0 {
		b.WriteString(" " + dimStyle.Render("nothing scheduled this month") + "\n")
		return b.String()
	}

	for i, e := range monthEvents {
		marker := " "
		nameStyle := normalStyle
		if i == cursor {
			marker = accentStyle.Render("▸")
			nameStyle = selectedStyle
		}
		fmt.Fprintf(&b, " %s %s  %s %s\n", marker,
			dimStyle.Render(e.Date.Format("Jan 02")),
			nameStyle.Render(truncStr(e.Name, 50)),
			metaStyle.Render(string(e.Kind)))
	}

	if m.detail {
		b.WriteString("\n" + m.eventDetail(monthEvents[cursor]))
	}
	return b.String()
}

// eventDetail resolves the event's backing record and summarizes it.
func (m calendarModel) eventDetail(e schedule.Event) string {
	var b strings.Builder
	switch e.RecordKind {
	case domain.KindHackathon:
		for _, h := range m.store.Hackathons() {
			if h.ID != e.RecordID {
				continue
			}
			b.WriteString(" " + selectedStyle.Render(h.Name) + "  " + statusBadge(domain.KindHackathon, h.Status) + "\n")
			b.WriteString(" " + metaStyle.Render("deadline ") + dimStyle.Render(formatDate(h.Deadline)))
			if h.Mode != "" {
				b.WriteString("  " + metaStyle.Render(h.Mode))
			}
			b.WriteString("\n")
			if !h.TechStack.Empty() {
				b.WriteString(" " + stackSummary(h.TechStack) + "\n")
			}
			if h.Notes != "" {
				b.WriteString(" " + dimStyle.Render(truncStr(h.Notes, 76)) + "\n")
			}
		}
	case domain.KindInternship:
		for _, in := range m.store.Internships() {
			if in.ID != e.RecordID {
				continue
			}
			b.WriteString(" " + selectedStyle.Render(in.Company+" · "+in.Role) + "  " + statusBadge(domain.KindInternship, in.Status) + "\n")
			if in.Location != "" {
				b.WriteString(" " + metaStyle.Render(in.Location) + "\n")
			}
			if in.Notes != "" {
				b.WriteString(" " + dimStyle.Render(truncStr(in.Notes, 76)) + "\n")
			}
		}
	}
	return b.String()
}
