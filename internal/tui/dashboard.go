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

// dashboardModel is the landing tab: upcoming dates, active projects and
// the application pipeline at a glance.
type dashboardModel struct {
	store  *store.Store
	width  int
	height int
}

func newDashboardModel(st *store.Store) dashboardModel {
	return dashboardModel{store: st}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder
	st := m.store.State()
	now := time.Now()

	if len(st.Hackathons)+len(st.Projects)+len(st.Internships) == 0 {
		b.WriteString("\n " + dimStyle.Render("nothing tracked yet — open a tab (2-4) and press n") + "\n")
		return b.String()
	}

	// Upcoming dates
	events := schedule.Nearest(schedule.Events(st.Hackathons, st.Internships), 3)
	b.WriteString(" " + metaStyle.Render("upcoming") + "\n")
	if len(events) == 0 {
		b.WriteString(" " + dimStyle.Render("no dates on the horizon") + "\n")
	}
	for _, e := range events {
		iso := e.Date.Format(domain.DateLayout)
		rel := daysUntil(iso, now)
		line := fmt.Sprintf(" %s  %s %s", dimStyle.Render(e.Date.Format("Jan 02")),
			normalStyle.Render(truncStr(e.Name, 44)), metaStyle.Render(string(e.Kind)))
		if rel != "" {
			line += "  " + accentStyle.Render(rel)
		}
		b.WriteString(line + "\n")
	}

	// Active projects
	active := []domain.Project{}
	for _, p := range st.Projects {
		if p.Status != domain.ProjectShipped {
			active = append(active, p)
		}
	}
	if len(active) > 0 {
		b.WriteString("\n " + metaStyle.Render("in progress") + "\n")
		if len(active) > 4 {
			active = active[:4]
		}
		for _, p := range active {
			fmt.Fprintf(&b, " %s %s %s\n",
				normalStyle.Render(fmt.Sprintf("%-24s", truncStr(p.Title, 24))),
				progressBar(p.Progress, 16),
				metaStyle.Render(fmt.Sprintf("%3d%%", p.Progress)))
		}
	}

	// Application pipeline
	if len(st.Internships) > 0 {
		counts := map[domain.Status]int{}
		for _, in := range st.Internships {
			counts[in.Status]++
		}
		parts := []string{}
		for _, s := range domain.StatusesFor(domain.KindInternship) {
			if counts[s] > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", counts[s], strings.ToLower(string(s))))
			}
		}
		b.WriteString("\n " + metaStyle.Render("pipeline ") + dimStyle.Render(strings.Join(parts, " · ")) + "\n")
	}

	return b.String()
}
