package form

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/teakit/teakit/theme"
)

// ResultMsg reports the outcome of a form dialog: Submitted with the
// validated data, or dismissed.
type ResultMsg struct {
	ID        string
	Submitted bool
	Data      map[string]any
}

// Dialog hosts a form in a centered modal. The form's submit action
// is rerouted into a ResultMsg; esc dismisses without data.
type Dialog struct {
	id    string
	title string
	form  *Form
}

// NewDialog wraps a form in a dialog with the given title.
func NewDialog(title string, f *Form) *Dialog {
	d := &Dialog{
		id:    uuid.New().String(),
		title: title,
		form:  f,
	}
	f.onSubmit = func(data map[string]any) tea.Cmd {
		return func() tea.Msg {
			return ResultMsg{ID: d.id, Submitted: true, Data: data}
		}
	}
	return d
}

// ID returns the dialog's identity, echoed in ResultMsg.
func (d *Dialog) ID() string { return d.id }

// Init focuses the hosted form.
func (d *Dialog) Init() tea.Cmd { return d.form.Init() }

// Form exposes the hosted form.
func (d *Dialog) Form() *Form { return d.form }

// Update forwards messages to the form; esc dismisses the dialog.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		id := d.id
		return func() tea.Msg { return ResultMsg{ID: id, Submitted: false} }
	}
	return d.form.Update(msg)
}

// View renders the dialog centered in the given area.
func (d *Dialog) View(width, height int) string {
	body := theme.DialogTitle.Render(d.title) + "\n\n" + d.form.View()
	card := theme.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
