package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.
// Sticking to the 16-color palette keeps the grid legible on every
// terminal theme; the user's scheme decides the exact shades.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Latency ladder extremes beyond the basic status colors
const (
	ColorPoor   lipgloss.Color = "5" // Magenta
	ColorFailed lipgloss.Color = "9" // Bright red
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// GradientColors drive the animated spinner frames: pink, purple,
// cyan, green.
var GradientColors = []lipgloss.Color{
	lipgloss.Color("#FF2E97"),
	lipgloss.Color("#BF40FF"),
	lipgloss.Color("#00FFFF"),
	lipgloss.Color("#39FF14"),
}

// SuccessStyle returns a style for success messages.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns a style for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle returns a style for warning messages.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle returns a style for informational messages.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle returns a style for de-emphasized text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// PrintWarning writes a warning line to stderr with the warning symbol.
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningStyle().Render(SymbolWarning), message)
}

// DisableColors forces plain-text output regardless of terminal support.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ForceColors enables ANSI color output even when the output is not a
// terminal, for piping into pagers that understand color.
func ForceColors() {
	lipgloss.SetColorProfile(termenv.ANSI)
}
