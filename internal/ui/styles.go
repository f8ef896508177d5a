package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for info panels
	ColorBlue      = lipgloss.Color("75")  // Blue for paths

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)
	StylePath    = lipgloss.NewStyle().Foreground(ColorBlue)

	// Components
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	// Semantic Prefix Styles
	StylePrefixDone  = lipgloss.NewStyle().Foreground(ColorSuccess)          // Green for present signals
	StylePrefixWarn  = lipgloss.NewStyle().Foreground(ColorWarning)          // Orange for gaps
	StylePrefixError = lipgloss.NewStyle().Foreground(ColorError).Bold(true) // Red for errors
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}

// ScoreStyle picks the color for a score out of maxScore:
// green from 80%, orange from 50%, red below.
func ScoreStyle(score, maxScore int) lipgloss.Style {
	if maxScore <= 0 {
		return StyleText
	}
	switch pct := score * 100 / maxScore; {
	case pct >= 80:
		return StyleSuccess
	case pct >= 50:
		return StyleWarning
	default:
		return StyleError
	}
}
