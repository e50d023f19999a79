// Package output provides the console output sink for AssetTracker.
// Messages are colored by severity through a StyleProvider (normally a Theme)
// and fall back to plain text with severity marks when color is unavailable.
package output

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"assettracker/pkg/assettypes"
)

// StyleProvider supplies the style for a severity name ("neutral", "success",
// "warning", "danger").
type StyleProvider interface {
	GetStyle(name string) TextStyle
	IsAvailable() bool
}

// TextStyle renders text. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}

// plainMarks replace colors when output is not styled. Every mark is two
// cells wide, neutral included, so table rows stay aligned with their header.
var plainMarks = map[assettypes.Severity]string{
	assettypes.Neutral: "  ",
	assettypes.Success: "✓ ",
	assettypes.Warning: "⚠ ",
	assettypes.Danger:  "✗ ",
}

// IsTerminal checks if stdout is a terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// SupportsColor reports whether stdout can render colors. NO_COLOR and
// non-terminal outputs disable color.
func SupportsColor() bool {
	if termenv.EnvNoColor() {
		return false
	}
	if !IsTerminal() {
		return false
	}
	return termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
}
