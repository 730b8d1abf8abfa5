// Package schedule derives dated views from the raw record collections: a
// unified deadline list and the month grid behind the calendar tab.
package schedule

import (
	"sort"
	"time"

	"github.com/trackwise/trackwise/pkg/domain"
)

// EventKind tags a projected event's origin.
type EventKind string

const (
	EventHackathon EventKind = "Hackathon"
	EventInterview EventKind = "Interview"
)

// Event is one dated entry in the unified deadline sequence, with a
// back-reference to the record it came from.
type Event struct {
	Name       string
	Date       time.Time
	Kind       EventKind
	RecordKind domain.Kind
	RecordID   string
}

// Events projects one entry per hackathon with a parseable deadline and one
// per interview date of every internship, merged and sorted ascending by
// date. Sorting is stable, so same-day events keep collection order.
// Records with empty or malformed dates contribute nothing.
func Events(hackathons []domain.Hackathon, internships []domain.Internship) []Event {
	var events []Event

	for _, h := range hackathons {
		d, ok := parseDate(h.Deadline)
		if !ok {
			continue
		}
		events = append(events, Event{
			Name:       h.Name,
			Date:       d,
			Kind:       EventHackathon,
			RecordKind: domain.KindHackathon,
			RecordID:   h.ID,
		})
	}

	for _, in := range internships {
		for _, raw := range in.InterviewDates {
			d, ok := parseDate(raw)
			if !ok {
				continue
			}
			events = append(events, Event{
				Name:       in.Company + " Interview",
				Date:       d,
				Kind:       EventInterview,
				RecordKind: domain.KindInternship,
				RecordID:   in.ID,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

// Nearest returns at most n events from the front of the sorted sequence.
func Nearest(events []Event, n int) []Event {
	if len(events) <= n {
		return events
	}
	return events[:n]
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
