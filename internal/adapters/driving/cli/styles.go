package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Colours shared by command output.
var (
	colourAccent  = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourSuccess = lipgloss.Color("#A6E3A1")
	colourError   = lipgloss.Color("#F38BA8")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colourAccent)
	keyStyle     = lipgloss.NewStyle().Foreground(colourMuted).Width(16)
	mutedStyle   = lipgloss.NewStyle().Foreground(colourMuted)
	successStyle = lipgloss.NewStyle().Foreground(colourSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colourError)
)

// keyValue renders an aligned "key value" row.
func keyValue(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), value)
}
