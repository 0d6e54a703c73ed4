package widgets

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/teakit/teakit/theme"
)

// DialogResultMsg reports the outcome of a dialog. ID identifies which
// dialog closed when several are in flight.
type DialogResultMsg struct {
	ID       string
	Accepted bool
}

// Dialog is a centered modal with a title, a message and one or two
// buttons. Esc always dismisses it as not accepted.
type Dialog struct {
	id      string
	title   string
	message string
	accept  string
	dismiss string // empty for message-only dialogs
	cursor  int
}

// NewConfirm creates an OK/Cancel dialog.
func NewConfirm(title, message string) *Dialog {
	return &Dialog{
		id:      uuid.New().String(),
		title:   title,
		message: message,
		accept:  "OK",
		dismiss: "Cancel",
	}
}

// NewMessage creates a dialog with a single OK button.
func NewMessage(title, message string) *Dialog {
	return &Dialog{
		id:      uuid.New().String(),
		title:   title,
		message: message,
		accept:  "OK",
	}
}

// ID returns the dialog's identity, echoed in DialogResultMsg.
func (d *Dialog) ID() string { return d.id }

// Update handles dialog keys and emits a DialogResultMsg on close.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch kmsg.String() {
	case "left", "right", "tab":
		if d.dismiss != "" {
			d.cursor = 1 - d.cursor
		}
	case "enter":
		accepted := d.cursor == 0
		return d.close(accepted)
	case "esc":
		return d.close(false)
	}
	return nil
}

func (d *Dialog) close(accepted bool) tea.Cmd {
	id := d.id
	return func() tea.Msg { return DialogResultMsg{ID: id, Accepted: accepted} }
}

// View renders the dialog centered in the given area.
func (d *Dialog) View(width, height int) string {
	buttons := d.renderButton(d.accept, d.cursor == 0)
	if d.dismiss != "" {
		buttons += "  " + d.renderButton(d.dismiss, d.cursor == 1)
	}

	body := theme.DialogTitle.Render(d.title) + "\n\n" +
		theme.Body.Render(d.message) + "\n\n" +
		buttons

	card := theme.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (d *Dialog) renderButton(label string, active bool) string {
	if active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
