package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/pkg/domain"
)

func TestCalendarMonthNavigation(t *testing.T) {
	m := newCalendarModel(newTestStore(t))
	m.year, m.month = 2024, time.January

	m, _ = m.Update(keyMsg("h"))
	if m.year != 2023 || m.month != time.December {
		t.Errorf("prev from Jan 2024 = %v %d, want December 2023", m.month, m.year)
	}
	m, _ = m.Update(keyMsg("l"))
	m, _ = m.Update(keyMsg("l"))
	if m.year != 2024 || m.month != time.February {
		t.Errorf("got %v %d, want February 2024", m.month, m.year)
	}
}

func TestCalendarJumpToToday(t *testing.T) {
	m := newCalendarModel(newTestStore(t))
	m.year, m.month = 1999, time.June

	m, _ = m.Update(keyMsg("t"))
	now := time.Now()
	if m.year != now.Year() || m.month != now.Month() {
		t.Errorf("got %v %d, want current month", m.month, m.year)
	}
}

func TestCalendarViewListsMonthEvents(t *testing.T) {
	st := newTestStore(t)
	st.UpsertHackathon(domain.Hackathon{
		Name:     "HackMIT",
		Deadline: "2024-03-10",
		Status:   domain.HackathonRegistered,
	})
	st.UpsertInternship(domain.Internship{
		Company:        "Acme",
		Role:           "SDE Intern",
		Status:         domain.InternshipInterviewSet,
		InterviewDates: []string{"2024-03-05"},
	})
	m := newCalendarModel(st)
	m.year, m.month = 2024, time.March

	out := m.View()
	if !strings.Contains(out, "March 2024") {
		t.Error("view missing month title")
	}
	if !strings.Contains(out, "HackMIT") {
		t.Error("view missing deadline event")
	}
	if !strings.Contains(out, "Acme Interview") {
		t.Error("view missing interview event")
	}
}

func TestCalendarEventDetail(t *testing.T) {
	st := newTestStore(t)
	st.UpsertHackathon(domain.Hackathon{
		Name:     "HackMIT",
		Deadline: "2024-03-10",
		Mode:     "Online",
		Status:   domain.HackathonBuilding,
		Notes:    "team of three",
	})
	m := newCalendarModel(st)
	m.year, m.month = 2024, time.March

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detail {
		t.Fatal("expected detail open after enter")
	}
	out := m.View()
	for _, want := range []string{"Building", "Online", "team of three"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q", want)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail {
		t.Error("expected detail closed after esc")
	}
}

func TestCalendarEventCursorAndMonthReset(t *testing.T) {
	st := newTestStore(t)
	st.UpsertHackathon(domain.Hackathon{Name: "first", Deadline: "2024-03-05", Status: domain.HackathonRegistered})
	st.UpsertHackathon(domain.Hackathon{Name: "second", Deadline: "2024-03-20", Status: domain.HackathonRegistered})
	m := newCalendarModel(st)
	m.year, m.month = 2024, time.March

	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Fatalf("after j: cursor = %d, want 1", m.cursor)
	}
	m, _ = m.Update(keyMsg("l"))
	if m.cursor != 0 {
		t.Error("month change should reset the event cursor")
	}
}

func TestCalendarViewOmitsOtherMonths(t *testing.T) {
	st := newTestStore(t)
	st.UpsertHackathon(domain.Hackathon{
		Name:     "AprilFest",
		Deadline: "2024-04-02",
		Status:   domain.HackathonRegistered,
	})
	m := newCalendarModel(st)
	m.year, m.month = 2024, time.March

	if strings.Contains(m.View(), "AprilFest") {
		t.Error("March view lists an April event")
	}
}
