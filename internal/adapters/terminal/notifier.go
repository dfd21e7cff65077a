package terminal

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	info    = lipgloss.Color("#6366F1") // Indigo
	success = lipgloss.Color("#10B981") // Green
	failure = lipgloss.Color("#EF4444") // Red

	startStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(info)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(failure)
)

// Notifier implements ports.Notifier by printing styled one-line
// notifications to stderr, the terminal stand-in for the original's toasts.
type Notifier struct{}

// NewNotifier creates a new terminal notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

func (*Notifier) Start(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", startStyle.Render("▸ "+title), message)
}

func (*Notifier) Success(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", successStyle.Render("✓ "+title), message)
}

func (*Notifier) Error(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("✗ "+title), message)
}
