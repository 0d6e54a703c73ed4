package widgets

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/theme"
	"github.com/teakit/teakit/validate"
)

// Area is a multiline input with a label and an attached validator.
type Area struct {
	Model textarea.Model

	key       string
	label     string
	validator validate.Validator
	errMsg    string
}

// AreaOption configures an Area at construction.
type AreaOption func(*Area)

// WithAreaValidator attaches a validator to the area.
func WithAreaValidator(v validate.Validator) AreaOption {
	return func(a *Area) { a.validator = v }
}

// WithAreaPlaceholder sets the placeholder text.
func WithAreaPlaceholder(s string) AreaOption {
	return func(a *Area) { a.Model.Placeholder = s }
}

// WithAreaSize sets the visible width and height in cells.
func WithAreaSize(width, height int) AreaOption {
	return func(a *Area) {
		a.Model.SetWidth(width)
		a.Model.SetHeight(height)
	}
}

// NewArea creates a labeled multiline input.
func NewArea(key, label string, opts ...AreaOption) *Area {
	a := &Area{
		Model: textarea.New(),
		key:   key,
		label: label,
	}
	a.Model.SetWidth(40)
	a.Model.SetHeight(4)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the area's data key.
func (a *Area) Key() string { return a.key }

// Focus gives the area keyboard focus.
func (a *Area) Focus() tea.Cmd { return a.Model.Focus() }

// Blur removes keyboard focus.
func (a *Area) Blur() { a.Model.Blur() }

// Focused reports whether the area has focus.
func (a *Area) Focused() bool { return a.Model.Focused() }

// Update handles messages.
func (a *Area) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok && a.Model.Focused() {
		a.errMsg = ""
	}
	return cmd
}

// Value returns the raw text.
func (a *Area) Value() string { return a.Model.Value() }

// SetValue replaces the raw text.
func (a *Area) SetValue(s string) { a.Model.SetValue(s) }

// Validate runs the validator against the current text, mirroring
// Field.Validate.
func (a *Area) Validate() (any, error) {
	out, err := commitValue(a.validator, a.Model.Value())
	a.errMsg = validate.Reason(err)
	return out, err
}

// Err returns the message from the last failed Validate, if any.
func (a *Area) Err() string { return a.errMsg }

// View renders the label above the text area.
func (a *Area) View() string {
	view := theme.Label.Render(a.label) + "\n" + a.Model.View()
	if a.errMsg != "" {
		view += "\n" + theme.FieldError.Render(a.errMsg)
	}
	return view
}
