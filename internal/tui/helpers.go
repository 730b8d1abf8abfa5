package tui

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/trackwise/trackwise/pkg/domain"
)

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// formatDate renders an ISO date as "Mar 10, 2024". Unparseable input passes
// through unchanged so a hand-edited data file still displays something.
func formatDate(iso string) string {
	t, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

// daysUntil renders the distance from today to an ISO date: "today", "in 3d",
// or "5d ago". Empty on unparseable input.
func daysUntil(iso string, now time.Time) string {
	t, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(t.Sub(today).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days > 0:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// clampCursor keeps a list cursor inside [0, n). Returns 0 for empty lists.
func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
