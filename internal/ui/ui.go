// Package ui renders the generator's terminal output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// Color palette
var (
	SuccessColor = lipgloss.Color("#5AF78E") // Green - complete states
	PathColor    = lipgloss.Color("#00D7FF") // Cyan - file paths
)

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(PathColor)
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

// Confirmation returns the completion line for path, without a trailing
// newline. Plain text is used unless styled is set.
func Confirmation(path string, styled bool) string {
	if !styled {
		return "Generated " + path
	}
	return successStyle.Render("Generated") + " " + pathStyle.Render(path)
}
