package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/trackwise/trackwise/internal/store"
	"github.com/trackwise/trackwise/pkg/domain"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
}

func TestHackathonsCursorNavigation(t *testing.T) {
	st := newTestStore(t)
	st.UpsertHackathon(domain.Hackathon{Name: "one", Status: domain.HackathonRegistered})
	st.UpsertHackathon(domain.Hackathon{Name: "two", Status: domain.HackathonRegistered})
	m := newHackathonsModel(st)

	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Fatalf("after j: cursor = %d, want 1", m.cursor)
	}
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Error("cursor ran past end of list")
	}
	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("after k: cursor = %d, want 0", m.cursor)
	}
}

func TestHackathonsNewOpensEditor(t *testing.T) {
	m := newHackathonsModel(newTestStore(t))
	_, cmd := m.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("expected command on 'n'")
	}
	msg, ok := cmd().(openEditorMsg)
	if !ok {
		t.Fatalf("command produced %T, want openEditorMsg", cmd())
	}
	if msg.kind != domain.KindHackathon {
		t.Errorf("kind = %q, want hackathon", msg.kind)
	}
	if msg.record != nil {
		t.Error("expected nil record for create")
	}
}

func TestHackathonsEditCarriesRecord(t *testing.T) {
	st := newTestStore(t)
	h := st.UpsertHackathon(domain.Hackathon{Name: "HackMIT", Status: domain.HackathonRegistered})
	m := newHackathonsModel(st)

	_, cmd := m.Update(keyMsg("e"))
	if cmd == nil {
		t.Fatal("expected command on 'e'")
	}
	msg := cmd().(openEditorMsg)
	got, ok := msg.record.(domain.Hackathon)
	if !ok {
		t.Fatalf("record is %T, want domain.Hackathon", msg.record)
	}
	if got.ID != h.ID {
		t.Errorf("record id = %q, want %q", got.ID, h.ID)
	}
}

func TestHackathonsStatusCycle(t *testing.T) {
	st := newTestStore(t)
	h := st.UpsertHackathon(domain.Hackathon{Name: "HackMIT", Status: domain.HackathonRegistered})
	m := newHackathonsModel(st)

	if _, cmd := m.Update(keyMsg("s")); cmd != nil {
		t.Error("status cycle should mutate in place, not emit a command")
	}
	if got := st.Hackathons()[0].Status; got != domain.HackathonBuilding {
		t.Errorf("after s: status = %q, want %q (was %q)", got, domain.HackathonBuilding, h.Status)
	}
}

func TestHackathonsDeleteRequest(t *testing.T) {
	st := newTestStore(t)
	h := st.UpsertHackathon(domain.Hackathon{Name: "HackMIT", Status: domain.HackathonRegistered})
	m := newHackathonsModel(st)

	_, cmd := m.Update(keyMsg("d"))
	if cmd == nil {
		t.Fatal("expected command on 'd'")
	}
	msg := cmd().(requestDeleteMsg)
	if msg.id != h.ID || msg.kind != domain.KindHackathon {
		t.Errorf("delete request = %+v, want id %q kind hackathon", msg, h.ID)
	}
}

func TestHackathonsEmptyView(t *testing.T) {
	m := newHackathonsModel(newTestStore(t))
	if !strings.Contains(m.View(), "no hackathons yet") {
		t.Error("empty list should render the hint")
	}
}

func TestHackathonsViewShowsStatusLabel(t *testing.T) {
	st := newTestStore(t)
	st.UpsertHackathon(domain.Hackathon{
		Name:     "HackMIT",
		Deadline: "2024-03-10",
		Status:   domain.HackathonBuilding,
	})
	m := newHackathonsModel(st)

	out := m.View()
	if !strings.Contains(out, "HackMIT") {
		t.Error("view missing hackathon name")
	}
	if !strings.Contains(out, "Building") {
		t.Error("view missing status label")
	}
}

func TestFocusOn(t *testing.T) {
	st := newTestStore(t)
	st.UpsertHackathon(domain.Hackathon{Name: "one", Status: domain.HackathonRegistered})
	h := st.UpsertHackathon(domain.Hackathon{Name: "two", Status: domain.HackathonRegistered})
	m := newHackathonsModel(st)

	m.focusOn(h.ID)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	m.focusOn("missing")
	if m.cursor != 1 {
		t.Error("unknown id should leave cursor unchanged")
	}
}
