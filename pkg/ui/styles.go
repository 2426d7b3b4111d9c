package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette for compliance output.
var (
	Pass    = lipgloss.Color("#00D26A") // green - policy compliant
	Fail    = lipgloss.Color("#FF3838") // red - violations found
	Warning = lipgloss.Color("#FFB800") // amber - structural problems
	Muted   = lipgloss.Color("#6B7280") // gray
	Accent  = lipgloss.Color("#4D96FF") // blue - headings
)

// Pre-configured styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	PassStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Pass)

	FailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Fail)

	ViolationStyle = lipgloss.NewStyle().
			Foreground(Fail)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// DisableColor forces plain output regardless of terminal support,
// for piped output and NO_COLOR environments.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// AutoColor disables color when stdout is not a terminal or the
// NO_COLOR convention is set.
func AutoColor() {
	if !StdoutIsTerminal() || termenv.EnvNoColor() {
		DisableColor()
	}
}
