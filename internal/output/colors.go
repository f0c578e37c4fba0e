package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette shared by all styled output, matching the original tool's
// terminal colors.
var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1")) // light blue
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d")) // green
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800")) // yellow
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9f83e4")) // purple
)

// colorEnabled reports whether styled output should be produced.
// Styling is disabled when stdout is not a terminal so piped output
// stays clean.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// StylePath returns a path styled for terminal display
func StylePath(path string) string {
	if !colorEnabled() {
		return path
	}
	return pathStyle.Render(path)
}

// StyleSuccess returns text styled as a success message
func StyleSuccess(text string) string {
	if !colorEnabled() {
		return text
	}
	return successStyle.Render(text)
}

func warnLabel() string {
	if !colorEnabled() {
		return "warning:"
	}
	return warnStyle.Render("warning:")
}

func debugLabel() string {
	if !colorEnabled() {
		return "debug:"
	}
	return debugStyle.Render("debug:")
}
