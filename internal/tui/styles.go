package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trackwise/trackwise/pkg/domain"
)

var (
	// Base styles, trackwise neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent cyan
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22d3ee")).
			Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#818cf8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Calendar
	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22d3ee")).
			Bold(true).
			Underline(true)

	eventDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f472b6")).
			Bold(true)
)

// iconGlyphs resolves status registry icon tags to terminal glyphs.
var iconGlyphs = map[string]string{
	"clock":    "⏱",
	"wrench":   "🔧",
	"hammer":   "🔨",
	"send":     "📤",
	"zap":      "⚡",
	"trophy":   "🏆",
	"alert":    "⚠",
	"bulb":     "💡",
	"eye":      "👁",
	"rocket":   "🚀",
	"mail":     "✉",
	"file":     "📄",
	"calendar": "📅",
	"check":    "✓",
	"x":        "✗",
	"ghost":    "👻",
}

// StatusStyle returns a bold style in the (kind, status) registry color.
func StatusStyle(kind domain.Kind, s domain.Status) lipgloss.Style {
	if info, ok := domain.LookupStatus(kind, s); ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// statusBadge renders "glyph Label" colored per the registry entry.
func statusBadge(kind domain.Kind, s domain.Status) string {
	info, ok := domain.LookupStatus(kind, s)
	if !ok {
		return metaStyle.Render(string(s))
	}
	glyph := iconGlyphs[info.Icon]
	if glyph != "" {
		glyph += " "
	}
	return StatusStyle(kind, s).Render(glyph + info.Label)
}

// progressBar renders a fixed-width bar for a [0,100] percentage.
func progressBar(pct, width int) string {
	if width < 1 {
		width = 1
	}
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	bar := accentStyle.Render(strings.Repeat("█", filled)) +
		metaStyle.Render(strings.Repeat("░", width-filled))
	return bar
}

// stackSummary renders the filled tech-stack fields as "FE React · BE Go".
func stackSummary(ts domain.TechStack) string {
	parts := []string{}
	add := func(tag, v string) {
		if v != "" {
			parts = append(parts, metaStyle.Render(tag+" ")+dimStyle.Render(v))
		}
	}
	add("FE", ts.Frontend)
	add("BE", ts.Backend)
	add("DB", ts.Databases)
	add("API", ts.APIs)
	add("OPS", ts.DevOps)
	if len(parts) == 0 {
		return metaStyle.Render("no tech stack")
	}
	return strings.Join(parts, metaStyle.Render(" · "))
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// renderLogo renders the TRACKWISE wordmark for the header line.
func renderLogo() string {
	letters := strings.Split("TRACKWISE", "")
	return accentStyle.Render(strings.Join(letters, " "))
}
