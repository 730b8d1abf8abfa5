package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/pkg/domain"
)

func seedProject(t *testing.T) (*projectsModel, domain.Project) {
	t.Helper()
	st := newTestStore(t)
	p := st.UpsertProject(domain.Project{
		Title:    "trackwise",
		Status:   domain.ProjectBuilding,
		Progress: 45,
		Features: []domain.Feature{
			{ID: "f1", Text: "auth"},
			{ID: "f2", Text: "dark mode"},
		},
	})
	m := newProjectsModel(st, nil)
	return &m, p
}

func TestProjectsDetailToggle(t *testing.T) {
	m, _ := seedProject(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.detail {
		t.Fatal("expected detail mode after enter")
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.detail {
		t.Error("expected list mode after esc")
	}
}

func TestProjectsFeatureToggle(t *testing.T) {
	m, _ := seedProject(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	next, _ = next.Update(keyMsg("j")) // second feature
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})

	got := next.store.Projects()[0]
	if got.Features[0].Completed {
		t.Error("first feature toggled unexpectedly")
	}
	if !got.Features[1].Completed {
		t.Error("second feature not toggled")
	}
	if got.Features[1].ID != "f2" {
		t.Errorf("feature id = %q, want stable %q", got.Features[1].ID, "f2")
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	if next.store.Projects()[0].Features[1].Completed {
		t.Error("second toggle should uncheck")
	}
}

func TestProjectsFeatureToggleAfterListShrinks(t *testing.T) {
	m, p := seedProject(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.Update(keyMsg("j")) // cursor on the second feature

	// An edit saved from the detail view can leave fewer features than the
	// cursor position.
	p.Features = p.Features[:1]
	next.store.UpsertProject(p)

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	got := next.store.Projects()[0]
	if len(got.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(got.Features))
	}
	if !got.Features[0].Completed {
		t.Error("toggle should land on the clamped cursor position")
	}
}

func TestProjectsReadmeWithoutAdvisor(t *testing.T) {
	m, _ := seedProject(t)
	next, cmd := m.Update(keyMsg("g"))
	if next.generating {
		t.Error("no advisor: should not enter generating state")
	}
	if cmd == nil {
		t.Fatal("expected a flash command explaining the missing key")
	}
	msg, ok := cmd().(flashMsg)
	if !ok || !msg.err {
		t.Errorf("expected error flash, got %#v", cmd())
	}
}

func TestProjectsReadmeErrorFlashes(t *testing.T) {
	m, _ := seedProject(t)
	m.generating = true

	next, cmd := m.Update(readmeMsg{err: errFake})
	if next.generating {
		t.Error("expected generating cleared")
	}
	if cmd == nil {
		t.Fatal("expected flash command on readme error")
	}
	msg := cmd().(flashMsg)
	if !msg.err {
		t.Error("expected error flash")
	}
}

func TestProjectsListViewShowsProgress(t *testing.T) {
	m, _ := seedProject(t)
	out := m.View()
	if !strings.Contains(out, "trackwise") {
		t.Error("view missing project title")
	}
	if !strings.Contains(out, "45%") {
		t.Error("view missing progress percentage")
	}
	if !strings.Contains(out, "0/2 features") {
		t.Error("view missing feature tally")
	}
}

func TestProjectsDetailViewShowsFeatures(t *testing.T) {
	m, _ := seedProject(t)
	m.detail = true
	out := m.View()
	if !strings.Contains(out, "auth") || !strings.Contains(out, "dark mode") {
		t.Error("detail view missing feature rows")
	}
	if !strings.Contains(out, "features (0/2)") {
		t.Error("detail view missing feature counter")
	}
}

// errFake is a sentinel for failure-path tests.
var errFake = errors.New("boom")
