package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/pkg/domain"
)

func TestInsightsStaleResultDropped(t *testing.T) {
	m := newInsightsModel(newTestStore(t), nil)
	m, _ = m.fetch() // gen 1
	m, _ = m.fetch() // gen 2 supersedes

	m, _ = m.Update(adviceMsg{tips: []string{"stale"}, gen: 1})
	if m.tips != nil {
		t.Fatal("stale generation result should be dropped")
	}
	if !m.loading {
		t.Error("still waiting on the live request")
	}

	m, _ = m.Update(adviceMsg{tips: []string{"fresh"}, gen: 2})
	if m.loading {
		t.Error("expected loading cleared")
	}
	if len(m.tips) != 1 || m.tips[0] != "fresh" {
		t.Errorf("tips = %v, want the gen-2 result", m.tips)
	}
}

func TestInsightsKindCycling(t *testing.T) {
	m := newInsightsModel(newTestStore(t), nil)
	if m.kind() != domain.KindHackathon {
		t.Fatalf("initial kind = %q, want hackathon", m.kind())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.kind() != domain.KindProject {
		t.Errorf("after tab: kind = %q, want project", m.kind())
	}
	if cmd == nil {
		t.Error("kind change should refetch")
	}

	m, _ = m.Update(keyMsg("h"))
	if m.kind() != domain.KindHackathon {
		t.Errorf("after h: kind = %q, want hackathon", m.kind())
	}
}

func TestInsightsSummaryIncludesRecords(t *testing.T) {
	st := newTestStore(t)
	st.UpsertProject(domain.Project{Title: "trackwise", Status: domain.ProjectBuilding, Progress: 45})
	m := newInsightsModel(st, nil)

	got := m.summary(domain.KindProject)
	if !strings.Contains(got, "trackwise") || !strings.Contains(got, "45%") {
		t.Errorf("summary %q missing project details", got)
	}
	if !strings.Contains(got, "1 projects") {
		t.Errorf("summary %q missing aggregate counts", got)
	}
}

func TestInsightsNilAdvisorFetchYieldsFallback(t *testing.T) {
	m := newInsightsModel(newTestStore(t), nil)
	m, cmd := m.fetch()
	if !m.loading {
		t.Fatal("expected loading state during fetch")
	}
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
}

func TestInsightsBreakdownBars(t *testing.T) {
	st := newTestStore(t)
	st.UpsertProject(domain.Project{Title: "a", Status: domain.ProjectBuilding})
	st.UpsertProject(domain.Project{Title: "b", Status: domain.ProjectBuilding})
	st.UpsertProject(domain.Project{Title: "c", Status: domain.ProjectShipped})
	m := newInsightsModel(st, nil)

	got := m.breakdown(domain.KindProject)
	if !strings.Contains(got, "Building") || !strings.Contains(got, "2") {
		t.Errorf("breakdown %q missing Building count", got)
	}
	if !strings.Contains(got, "Shipped") {
		t.Errorf("breakdown %q missing Shipped row", got)
	}
	if strings.Contains(got, "Idea") {
		t.Error("zero-count statuses should be omitted")
	}
	if m.breakdown(domain.KindHackathon) != "" {
		t.Error("empty collection should yield no bars")
	}
}

func TestInsightsViewRendersTips(t *testing.T) {
	m := newInsightsModel(newTestStore(t), nil)
	m.tips = []string{"Focus on MVP features first."}

	out := m.View()
	if !strings.Contains(out, "Focus on MVP features first.") {
		t.Error("view missing tip text")
	}
	if !strings.Contains(out, "GEMINI_API_KEY") {
		t.Error("view missing missing-key hint when advisor is nil")
	}
}
