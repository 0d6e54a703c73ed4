// Package form composes validated widgets into submit-able forms,
// with reusable form definitions (Blueprint) and a modal variant
// (Dialog).
package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/theme"
	"github.com/teakit/teakit/widgets"
)

// Element is a form input: something with a data key that can take
// focus, consume messages, render itself and validate its value.
// *widgets.Field, *widgets.Area and *widgets.Choice implement it.
type Element interface {
	Key() string
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View() string
	Validate() (any, error)
	Err() string
}

// Errors maps element keys to their validation messages.
type Errors map[string][]string

// Add appends a message for a key.
func (e Errors) Add(key, msg string) { e[key] = append(e[key], msg) }

// IsEmpty reports whether no element failed.
func (e Errors) IsEmpty() bool { return len(e) == 0 }

// SubmitMsg carries the validated data of a submitted form. It is
// emitted when no OnSubmit callback is configured.
type SubmitMsg struct {
	Data map[string]any
}

// Form is an ordered set of elements with a submit button. Tab and
// shift+tab move focus; enter on the button (or on a single-line
// element) submits.
type Form struct {
	elements []Element
	button   *widgets.Button
	focus    int // len(elements) means the button

	banner   bool
	onSubmit func(map[string]any) tea.Cmd
	clean    func(data map[string]any, errs Errors)

	data map[string]any
	errs Errors
}

// Option configures a Form.
type Option func(*Form)

// WithErrorBanner adds a summary box below the form listing every
// failure, in addition to the per-element messages.
func WithErrorBanner() Option {
	return func(f *Form) { f.banner = true }
}

// WithSubmitLabel renames the submit button.
func WithSubmitLabel(label string) Option {
	return func(f *Form) { f.button.Label = label }
}

// OnSubmit sets the callback invoked with the validated data.
func OnSubmit(fn func(data map[string]any) tea.Cmd) Option {
	return func(f *Form) { f.onSubmit = fn }
}

// WithClean sets a hook that runs after element validation and may add
// cross-field errors or rewrite data.
func WithClean(fn func(data map[string]any, errs Errors)) Option {
	return func(f *Form) { f.clean = fn }
}

// New creates a form over the given elements.
func New(elements []Element, opts ...Option) *Form {
	f := &Form{
		elements: elements,
		errs:     Errors{},
	}
	f.button = widgets.NewButton("Submit", f.submit)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Init focuses the first element.
func (f *Form) Init() tea.Cmd {
	return f.setFocus(0)
}

func (f *Form) setFocus(i int) tea.Cmd {
	for _, el := range f.elements {
		el.Blur()
	}
	f.button.Blur()

	f.focus = i
	if i == len(f.elements) {
		return f.button.Focus()
	}
	return f.elements[i].Focus()
}

// Update handles focus traversal and forwards everything else to the
// focused element.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return f.setFocus((f.focus + 1) % (len(f.elements) + 1))
		case "shift+tab":
			return f.setFocus((f.focus + len(f.elements)) % (len(f.elements) + 1))
		case "enter":
			if f.focus < len(f.elements) {
				// Enter advances through single-line elements; in a
				// multiline area it stays an ordinary newline.
				switch f.elements[f.focus].(type) {
				case *widgets.Field, *widgets.Choice:
					return f.setFocus(f.focus + 1)
				}
			}
		}
	}

	if f.focus == len(f.elements) {
		return f.button.Update(msg)
	}
	return f.elements[f.focus].Update(msg)
}

// Validate runs every element's validator, then the clean hook.
// It reports whether all data was accepted; afterwards Data and
// Errors hold the outcome.
func (f *Form) Validate() bool {
	f.data = map[string]any{}
	f.errs = Errors{}
	for _, el := range f.elements {
		v, err := el.Validate()
		if err != nil {
			f.errs.Add(el.Key(), el.Err())
			continue
		}
		f.data[el.Key()] = v
	}
	if f.clean != nil {
		f.clean(f.data, f.errs)
	}
	return f.errs.IsEmpty()
}

// Submit validates and, on success, fires the submit action.
func (f *Form) Submit() tea.Cmd { return f.submit() }

func (f *Form) submit() tea.Cmd {
	if !f.Validate() {
		return nil
	}
	if f.onSubmit != nil {
		return f.onSubmit(f.data)
	}
	data := f.data
	return func() tea.Msg { return SubmitMsg{Data: data} }
}

// Data returns the values collected by the last successful Validate.
func (f *Form) Data() map[string]any { return f.data }

// Errors returns the failures recorded by the last Validate.
func (f *Form) Errors() Errors { return f.errs }

// View renders the elements, the button and, when configured, the
// error banner.
func (f *Form) View() string {
	var b strings.Builder
	for _, el := range f.elements {
		b.WriteString(el.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(f.button.View())

	if f.banner && !f.errs.IsEmpty() {
		var lines []string
		for _, el := range f.elements {
			for _, msg := range f.errs[el.Key()] {
				lines = append(lines, el.Key()+": "+msg)
			}
		}
		for key, msgs := range f.errs {
			if f.elementByKey(key) != nil {
				continue // already listed in element order
			}
			for _, msg := range msgs {
				lines = append(lines, key+": "+msg)
			}
		}
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorBanner.Render(strings.Join(lines, "\n")))
	}
	return b.String()
}

func (f *Form) elementByKey(key string) Element {
	for _, el := range f.elements {
		if el.Key() == key {
			return el
		}
	}
	return nil
}
