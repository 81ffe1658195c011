// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Ember  = lipgloss.Color("#E8590C")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Skip    = "-"
	Arrow   = "→"
)

// PadRight pads s with spaces to the given display width.
// Widths are measured in terminal cells, so icons and wide runes line up.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
