package presentation

import (
	"fjacquet/event-budget/internal/aggregation"
	"fjacquet/event-budget/internal/sensitivity"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorBorder = lipgloss.Color("#575653")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorMuted  = lipgloss.Color("#6F6E69")
	ColorAccent = lipgloss.Color("#4385BE")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	surplusStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	deficitStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// BandStyle maps a matrix band to its colour.
func BandStyle(band sensitivity.Band) lipgloss.Style {
	switch band {
	case sensitivity.BandSurplus:
		return surplusStyle
	case sensitivity.BandDeficit:
		return deficitStyle
	default:
		return mutedStyle
	}
}

// OutcomeStyle maps the headline outcome to its colour.
func OutcomeStyle(outcome aggregation.Outcome) lipgloss.Style {
	if outcome == aggregation.OutcomeSurplus {
		return surplusStyle
	}
	return deficitStyle
}
