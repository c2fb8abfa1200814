// Package console formats user-facing CLI output. Messages are styled with
// lipgloss when stderr is a terminal and rendered as plain text otherwise.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/tty"
)

var consoleLog = logger.New("console:console")

var colorEnabled = tty.IsStderrTerminal() && os.Getenv("NO_COLOR") == ""

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"})
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"})
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"})
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"})
	verboseStyle = lipgloss.NewStyle().Faint(true)
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#8250DF", Dark: "#D2A8FF"})
	listStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#8B949E"})
)

// SetColorEnabled forces styling on or off, e.g. for --no-color.
func SetColorEnabled(enabled bool) {
	consoleLog.Printf("Color output set: enabled=%v", enabled)
	colorEnabled = enabled
}

// IsAccessibleMode reports whether animated or decorative output should be
// avoided (ACCESSIBLE set, TERM=dumb, or NO_COLOR set).
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != "" || os.Getenv("TERM") == "dumb" || os.Getenv("NO_COLOR") != ""
}

func applyStyle(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ "+message)
}

// FormatSuccessMessage formats a success message.
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ "+message)
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ "+message)
}

// FormatErrorMessage formats an error message. Only the first line of a
// multi-line message carries the marker.
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ "+message)
}

// FormatVerboseMessage formats detail that is only shown with --verbose.
func FormatVerboseMessage(message string) string {
	return applyStyle(verboseStyle, "  "+message)
}

// FormatCommandMessage formats a shell command the user could run.
func FormatCommandMessage(command string) string {
	return applyStyle(commandStyle, "⚡ "+command)
}

// FormatListItem formats one bullet in a list.
func FormatListItem(item string) string {
	return applyStyle(listStyle, "  • ") + item
}

// FormatList renders items as bullets, one per line, with no trailing newline.
func FormatList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, FormatListItem(item))
	}
	return strings.Join(lines, "\n")
}

// LogVerbose prints message to stderr only when verbose is set.
func LogVerbose(verbose bool, message string) {
	if !verbose {
		return
	}
	fmt.Fprintln(os.Stderr, FormatVerboseMessage(message))
}
