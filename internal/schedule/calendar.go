package schedule

import "time"

// Cell is one slot of the 7-column month grid. Day 0 marks a leading blank
// before the month's first day.
type Cell struct {
	Day    int
	Events []Event
	Today  bool
}

// Grid builds the flat cell sequence for a month: leading blanks equal to
// the first day's weekday (Sunday = 0), then one cell per day annotated
// with that day's events. Exactly one cell is marked today when the shown
// month contains the reference date.
func Grid(year int, month time.Month, events []Event, today time.Time) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	cells := make([]Cell, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}

	sameMonth := today.Year() == year && today.Month() == month
	for day := 1; day <= DaysIn(year, month); day++ {
		cells = append(cells, Cell{
			Day:    day,
			Events: eventsOn(events, year, month, day),
			Today:  sameMonth && today.Day() == day,
		})
	}
	return cells
}

// DaysIn returns the day count of a month, leap years included.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PrevMonth steps back one month with year rollover at January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps forward one month with year rollover at December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func eventsOn(events []Event, year int, month time.Month, day int) []Event {
	var out []Event
	for _, e := range events {
		if e.Date.Year() == year && e.Date.Month() == month && e.Date.Day() == day {
			out = append(out, e)
		}
	}
	return out
}
