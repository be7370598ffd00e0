// Package ui provides the styled terminal output for the generator CLI.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	successColor = lipgloss.Color("#00D26A")
	errorColor   = lipgloss.Color("#FF3838")
	mutedColor   = lipgloss.Color("#6B7280")
)

// Pre-configured styles.
var (
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// Successf prints a green check line to stdout.
func Successf(format string, args ...any) {
	fmt.Println(SuccessStyle.Render("✓ ") + fmt.Sprintf(format, args...))
}

// Errorf prints a red cross line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ ")+fmt.Sprintf(format, args...))
}

// Mutedf prints a dimmed detail line to stdout.
func Mutedf(format string, args ...any) {
	fmt.Println(MutedStyle.Render(fmt.Sprintf(format, args...)))
}
