// Package demo is the showcase application behind teakit-demo: a
// screen stack over the widget and form packages, one screen per
// component family.
package demo

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is one page of the demo.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHint is a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// KeyHintProvider is an optional interface for screens with custom
// footer hints.
type KeyHintProvider interface {
	KeyHints() []KeyHint
}

// EscHandler is an optional interface for screens that consume esc
// themselves (e.g. to dismiss a modal) instead of navigating back.
type EscHandler interface {
	HandlesEsc() bool
}
