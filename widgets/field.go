// Package widgets provides small Bubble Tea components: validated
// inputs, choice groups, tables, trees, dialogs and a countdown. They
// are building blocks for forms, not full screens; each widget renders
// itself and leaves placement to the caller.
package widgets

import (
	"errors"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/theme"
	"github.com/teakit/teakit/validate"
)

// Field is a single-line input with a label and an attached validator.
// The validator's Check runs on every edit to toggle the validity
// marker; Convert runs on Validate to produce the committed value.
type Field struct {
	Model textinput.Model

	key       string
	label     string
	validator validate.Validator
	touched   bool
	errMsg    string
}

// FieldOption configures a Field at construction.
type FieldOption func(*Field)

// WithValidator attaches a validator to the field.
func WithValidator(v validate.Validator) FieldOption {
	return func(f *Field) { f.validator = v }
}

// WithPlaceholder sets the placeholder text.
func WithPlaceholder(s string) FieldOption {
	return func(f *Field) { f.Model.Placeholder = s }
}

// WithCharLimit caps the input length.
func WithCharLimit(n int) FieldOption {
	return func(f *Field) { f.Model.CharLimit = n }
}

// WithDefault pre-fills the field.
func WithDefault(s string) FieldOption {
	return func(f *Field) { f.Model.SetValue(s) }
}

// WithMasked echoes the input as asterisks.
func WithMasked() FieldOption {
	return func(f *Field) { f.Model.EchoMode = textinput.EchoPassword }
}

// NewField creates a labeled input field.
func NewField(key, label string, opts ...FieldOption) *Field {
	f := &Field{
		Model: textinput.New(),
		key:   key,
		label: label,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TextField creates a field that accepts any non-empty text.
func TextField(key, label string, opts ...FieldOption) *Field {
	return NewField(key, label, append([]FieldOption{WithValidator(validate.NonEmpty())}, opts...)...)
}

// IntField creates a field whose value converts to an int.
func IntField(key, label string, opts ...FieldOption) *Field {
	return NewField(key, label, append([]FieldOption{WithValidator(validate.Int())}, opts...)...)
}

// FloatField creates a field whose value converts to a float64.
func FloatField(key, label string, opts ...FieldOption) *Field {
	return NewField(key, label, append([]FieldOption{WithValidator(validate.Float())}, opts...)...)
}

// PasswordField creates a masked text field.
func PasswordField(key, label string, opts ...FieldOption) *Field {
	return NewField(key, label, append([]FieldOption{WithMasked(), WithValidator(validate.NonEmpty())}, opts...)...)
}

// Key returns the field's data key.
func (f *Field) Key() string { return f.key }

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd { return f.Model.Focus() }

// Blur removes keyboard focus.
func (f *Field) Blur() { f.Model.Blur() }

// Focused reports whether the field has focus.
func (f *Field) Focused() bool { return f.Model.Focused() }

// Update handles messages.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok && f.Model.Focused() {
		f.touched = true
		f.errMsg = ""
	}
	return cmd
}

// Value returns the raw text.
func (f *Field) Value() string { return f.Model.Value() }

// SetValue replaces the raw text.
func (f *Field) SetValue(s string) { f.Model.SetValue(s) }

// Validate runs the validator against the current text and returns the
// committed value: Check gates acceptance, then Convert supplies the
// typed value (pure conditions fall back to the raw text). A nil error
// means the value was accepted.
func (f *Field) Validate() (any, error) {
	f.touched = true
	raw := f.Model.Value()
	out, err := commitValue(f.validator, raw)
	f.errMsg = validate.Reason(err)
	return out, err
}

// Err returns the message from the last failed Validate, if any.
func (f *Field) Err() string { return f.errMsg }

// commitValue applies a validator to raw input the way widgets commit
// values: Check gates acceptance, Convert supplies the typed value.
// A validator without conversion support yields the raw input.
func commitValue(v validate.Validator, raw string) (any, error) {
	if v == nil {
		return raw, nil
	}
	if v.Check(raw) {
		out, err := v.Convert(raw)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, validate.ErrConversionUnsupported) {
			return raw, nil
		}
		return nil, err
	}
	// Check failed; ask Convert for a display message when it has one.
	if _, err := v.Convert(raw); err != nil && !errors.Is(err, validate.ErrConversionUnsupported) {
		return nil, err
	}
	return nil, validate.Invalid("invalid value")
}

// View renders the label, the input and the validity marker.
func (f *Field) View() string {
	view := theme.Label.Render(f.label) + " " + f.Model.View()
	if f.errMsg != "" {
		return view + "  " + theme.FieldError.Render(f.errMsg)
	}
	if f.touched && f.validator != nil {
		if f.validator.Check(f.Model.Value()) {
			view += " " + theme.Valid.Render("✓")
		} else {
			view += " " + theme.Invalid.Render("✗")
		}
	}
	return view
}
