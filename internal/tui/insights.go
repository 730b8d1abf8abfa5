package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trackwise/trackwise/internal/advice"
	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

// adviceMsg carries fetched tips tagged with the request generation that
// produced them. Results from superseded requests are dropped.
type adviceMsg struct {
	tips []string
	gen  int
}

// insightsModel is the mentor-tips tab. Tips target one record kind at a
// time; tab cycles the target and r refetches.
type insightsModel struct {
	store   *store.Store
	advisor *advice.Advisor

	spin    spinner.Model
	tips    []string
	loading bool
	gen     int
	kindIdx int
	width   int
	height  int
}

func newInsightsModel(st *store.Store, advisor *advice.Advisor) insightsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#22d3ee"))
	return insightsModel{store: st, advisor: advisor, spin: sp}
}

func (m insightsModel) kind() domain.Kind {
	return domain.Kinds[m.kindIdx]
}

// fetch starts a tips request for the current kind. Bumping gen invalidates
// any request still in flight.
func (m insightsModel) fetch() (insightsModel, tea.Cmd) {
	m.gen++
	m.loading = true
	gen := m.gen
	kind := m.kind()
	summary := m.summary(kind)
	advisor := m.advisor
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		tips := advisor.Tips(context.Background(), summary, kind)
		return adviceMsg{tips: tips, gen: gen}
	})
}

// summary condenses the current records of a kind into a prompt context.
func (m insightsModel) summary(kind domain.Kind) string {
	st := m.store.State()
	head := fmt.Sprintf("I have %d hackathons, %d projects and %d internship applications tracked.",
		len(st.Hackathons), len(st.Projects), len(st.Internships))

	parts := []string{}
	switch kind {
	case domain.KindHackathon:
		for _, h := range st.Hackathons {
			parts = append(parts, fmt.Sprintf("%s (%s, deadline %s)", h.Name, h.Status, h.Deadline))
		}
	case domain.KindProject:
		for _, p := range st.Projects {
			parts = append(parts, fmt.Sprintf("%s (%s, %d%% done)", p.Title, p.Status, p.Progress))
		}
	case domain.KindInternship:
		for _, in := range st.Internships {
			parts = append(parts, fmt.Sprintf("%s %s (%s)", in.Company, in.Role, in.Status))
		}
	}
	if len(parts) == 0 {
		return head + " Nothing tracked for this category yet."
	}
	return head + " Current " + string(kind) + " entries: " + strings.Join(parts, "; ") + "."
}

func (m insightsModel) Update(msg tea.Msg) (insightsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case adviceMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.tips = msg.tips
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m.fetch()
		case "tab", "l", "right":
			m.kindIdx = (m.kindIdx + 1) % len(domain.Kinds)
			return m.fetch()
		case "h", "left":
			m.kindIdx = (m.kindIdx - 1 + len(domain.Kinds)) % len(domain.Kinds)
			return m.fetch()
		}
	}
	return m, nil
}

// breakdown renders one textual bar per status with at least one record.
func (m insightsModel) breakdown(kind domain.Kind) string {
	counts := map[domain.Status]int{}
	switch kind {
	case domain.KindHackathon:
		for _, h := range m.store.Hackathons() {
			counts[h.Status]++
		}
	case domain.KindProject:
		for _, p := range m.store.Projects() {
			counts[p.Status]++
		}
	case domain.KindInternship:
		for _, in := range m.store.Internships() {
			counts[in.Status]++
		}
	}
	if len(counts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, s := range domain.StatusesFor(kind) {
		n := counts[s]
		if n == 0 {
			continue
		}
		bar := StatusStyle(kind, s).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, " %s %s %s\n",
			metaStyle.Render(fmt.Sprintf("%-20s", s)), bar, dimStyle.Render(fmt.Sprintf("%d", n)))
	}
	return b.String()
}

func (m insightsModel) View() string {
	var b strings.Builder

	kinds := make([]string, len(domain.Kinds))
	for i, k := range domain.Kinds {
		if i == m.kindIdx {
			kinds[i] = accentStyle.Render("[" + k.Title() + "s]")
		} else {
			kinds[i] = dimStyle.Render(k.Title() + "s")
		}
	}
	b.WriteString(" " + metaStyle.Render("mentor tips · ") + strings.Join(kinds, " ") + "\n\n")

	if bars := m.breakdown(m.kind()); bars != "" {
		b.WriteString(bars + "\n")
	}

	if m.advisor == nil {
		b.WriteString(" " + dimStyle.Render("set GEMINI_API_KEY for personalized tips — showing the basics") + "\n\n")
	}

	if m.loading {
		b.WriteString(" " + m.spin.View() + dimStyle.Render(" consulting mentor...") + "\n")
		return b.String()
	}
	if m.tips == nil {
		b.WriteString(" " + dimStyle.Render("press r to fetch tips") + "\n")
		return b.String()
	}

	for i, tip := range m.tips {
		fmt.Fprintf(&b, " %s %s\n\n", accentStyle.Render(fmt.Sprintf("%d.", i+1)), normalStyle.Render(tip))
	}
	return b.String()
}
