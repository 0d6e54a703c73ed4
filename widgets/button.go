package widgets

import (
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/theme"
)

// Button is a focusable action button. Enter triggers OnPress while
// the button has focus.
type Button struct {
	Label   string
	OnPress func() tea.Cmd

	focused bool
}

// NewButton creates a button.
func NewButton(label string, onPress func() tea.Cmd) *Button {
	return &Button{Label: label, OnPress: onPress}
}

// Focus gives the button keyboard focus.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes keyboard focus.
func (b *Button) Blur() { b.focused = false }

// Focused reports whether the button has focus.
func (b *Button) Focused() bool { return b.focused }

// Update handles key events.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if !b.focused {
		return nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b.OnPress()
		}
	}
	return nil
}

// View renders the button.
func (b *Button) View() string {
	label := "▸ " + b.Label
	if b.focused {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
