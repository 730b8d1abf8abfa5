package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
	a := NewApp(st, nil, zap.NewNop())
	a.width = 80
	a.height = 30
	return a
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppTabSwitching(t *testing.T) {
	tests := []struct {
		key      string
		wantView view
	}{
		{"2", viewHackathons},
		{"3", viewProjects},
		{"4", viewInternships},
		{"5", viewCalendar},
		{"6", viewInsights},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			app := newTestApp(t)
			model, _ := app.Update(keyMsg(tc.key))
			a := model.(App)
			if a.view != tc.wantView {
				t.Errorf("after key %q: expected view=%d, got %d", tc.key, tc.wantView, a.view)
			}
		})
	}
}

func TestAppGlobalQuitOnQ(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command on 'q', got nil")
	}
}

func TestAppEditorOverlayOpenAndClose(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(openEditorMsg{kind: domain.KindHackathon})
	a = model.(App)
	if !a.editorOpen {
		t.Fatal("expected editorOpen=true after openEditorMsg")
	}
	if a.editor.title != "New Hackathon" {
		t.Errorf("editor title = %q, want %q", a.editor.title, "New Hackathon")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if a.editorOpen {
		t.Error("expected editorOpen=false after Esc")
	}
}

func TestAppEditorCapturesTabKeys(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(openEditorMsg{kind: domain.KindProject})
	a = model.(App)

	model, _ = a.Update(keyMsg("2"))
	a = model.(App)
	if !a.editorOpen {
		t.Error("digit key should feed the editor, not switch tabs")
	}
	if a.view == viewHackathons {
		t.Error("view changed while editor open")
	}
}

func TestAppRecordSavedPersists(t *testing.T) {
	a := newTestApp(t)
	a.editorOpen = true

	model, _ := a.Update(recordSavedMsg{
		kind:   domain.KindHackathon,
		record: domain.Hackathon{Name: "HackMIT", Status: domain.HackathonRegistered},
	})
	a = model.(App)

	if a.editorOpen {
		t.Error("expected editor to close after save")
	}
	got := a.store.Hackathons()
	if len(got) != 1 {
		t.Fatalf("expected 1 hackathon in store, got %d", len(got))
	}
	if got[0].ID == "" {
		t.Error("stored hackathon missing minted id")
	}
}

func TestAppDeleteConfirmFlow(t *testing.T) {
	a := newTestApp(t)
	h := a.store.UpsertHackathon(domain.Hackathon{Name: "ETHGlobal", Status: domain.HackathonRegistered})

	model, _ := a.Update(requestDeleteMsg{kind: domain.KindHackathon, id: h.ID, name: h.Name})
	a = model.(App)
	if !a.confirmOpen {
		t.Fatal("expected confirmOpen=true after requestDeleteMsg")
	}

	// n keeps the record
	model, _ = a.Update(keyMsg("n"))
	a = model.(App)
	if a.confirmOpen {
		t.Error("expected confirm closed after 'n'")
	}
	if len(a.store.Hackathons()) != 1 {
		t.Fatal("record deleted despite 'n'")
	}

	// y deletes
	model, _ = a.Update(requestDeleteMsg{kind: domain.KindHackathon, id: h.ID, name: h.Name})
	a = model.(App)
	model, _ = a.Update(keyMsg("y"))
	a = model.(App)
	if len(a.store.Hackathons()) != 0 {
		t.Error("expected record removed after 'y'")
	}
}

func TestAppFlashSetAndCleared(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(flashMsg{text: "link copied"})
	a = model.(App)
	if a.flash != "link copied" {
		t.Fatalf("flash = %q, want %q", a.flash, "link copied")
	}

	model, _ = a.Update(keyMsg("j"))
	a = model.(App)
	if a.flash != "" {
		t.Error("expected flash cleared on next keypress")
	}
}

func TestAppViewRendersTabs(t *testing.T) {
	a := newTestApp(t)
	out := a.View()
	for _, want := range []string{"Dashboard", "Hackathons", "Projects", "Internships", "Calendar", "Insights"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing tab label %q", want)
		}
	}
}
