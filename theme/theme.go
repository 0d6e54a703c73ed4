// Package theme holds the shared color palette and lipgloss styles
// used by the teakit widgets.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted, terminal-friendly defaults
var (
	Primary = lipgloss.Color("#7C3AED") // Violet
	Accent  = lipgloss.Color("#0EA5E9") // Sky
	Success = lipgloss.Color("#16A34A") // Green
	Error   = lipgloss.Color("#DC2626") // Red
	Text    = lipgloss.Color("#E2E8F0") // Light slate
	TextDim = lipgloss.Color("#64748B") // Slate
	Surface = lipgloss.Color("#1E293B") // Dark slate
	Border  = lipgloss.Color("#475569") // Mid slate
)

// Typography
var (
	Label = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Validation states
var (
	Valid = lipgloss.NewStyle().
		Foreground(Success)

	Invalid = lipgloss.NewStyle().
		Foreground(Error)

	FieldError = lipgloss.NewStyle().
			Foreground(Error).
			Italic(true)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(Error).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Error).
			Padding(0, 1)
)

// Selection
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Containers
var (
	Card = lipgloss.NewStyle().
		Background(Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Align(lipgloss.Center)
)

// Widgets
var (
	ButtonActive = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(Surface).
			Padding(0, 1)

	TableHeader = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	TreeBranch = lipgloss.NewStyle().
			Foreground(TextDim)

	TimerBarFilled = lipgloss.NewStyle().
			Background(Accent)

	TimerBarEmpty = lipgloss.NewStyle().
			Background(Border)
)

// SetAccent overrides the accent color and rebuilds the styles that
// use it. Call before any widget renders.
func SetAccent(hex string) {
	Accent = lipgloss.Color(hex)
	TableHeader = TableHeader.Foreground(Accent)
	TimerBarFilled = TimerBarFilled.Background(Accent)
}
