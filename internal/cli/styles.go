package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
)

// colorEnabled reports whether styled status marks should be rendered on w.
// Disabled for pipes, CI, and NO_COLOR environments so machine consumers
// never see escape sequences.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// statusMark returns a ✓ or ✗, styled when w is a terminal.
func statusMark(w io.Writer, ok bool) string {
	mark, style := "✓", successStyle
	if !ok {
		mark, style = "✗", errorStyle
	}
	if !colorEnabled(w) {
		return mark
	}
	return style.Render(mark)
}
