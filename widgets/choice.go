package widgets

import (
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/theme"
)

// ChoiceItem is a selectable option: Code is the committed value,
// Label is what the user sees.
type ChoiceItem struct {
	Code  string
	Label string
}

// Choice is a radio-style option group. Exactly one item is selected
// at a time; the default selection is the first item unless changed
// with SelectCode.
type Choice struct {
	key      string
	label    string
	items    []ChoiceItem
	selected int
	focused  bool
}

// NewChoice creates a choice group with the given items.
func NewChoice(key, label string, items ...ChoiceItem) *Choice {
	return &Choice{
		key:   key,
		label: label,
		items: items,
	}
}

// SelectCode moves the selection to the item with the given code.
// Unknown codes leave the selection unchanged.
func (c *Choice) SelectCode(code string) {
	for i, item := range c.items {
		if item.Code == code {
			c.selected = i
			return
		}
	}
}

// Key returns the choice's data key.
func (c *Choice) Key() string { return c.key }

// Focus gives the group keyboard focus.
func (c *Choice) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes keyboard focus.
func (c *Choice) Blur() { c.focused = false }

// Focused reports whether the group has focus.
func (c *Choice) Focused() bool { return c.focused }

// Update handles keyboard navigation.
func (c *Choice) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch kmsg.String() {
	case "left", "h":
		if c.selected > 0 {
			c.selected--
		}
	case "right", "l", " ":
		if c.selected < len(c.items)-1 {
			c.selected++
		}
	}
	return nil
}

// Value returns the code of the selected item.
func (c *Choice) Value() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[c.selected].Code
}

// Validate returns the selected code. A choice group cannot hold an
// invalid value, so the error is always nil.
func (c *Choice) Validate() (any, error) {
	return c.Value(), nil
}

// Err returns the empty string; see Validate.
func (c *Choice) Err() string { return "" }

// View renders the group as a row of radio markers.
func (c *Choice) View() string {
	s := theme.Label.Render(c.label) + " "
	for i, item := range c.items {
		marker := "( )"
		if i == c.selected {
			marker = "(•)"
		}
		entry := marker + " " + item.Label + "  "
		if i == c.selected && c.focused {
			s += theme.Selected.Render(entry)
		} else if i == c.selected {
			s += theme.Body.Render(entry)
		} else {
			s += theme.Unselected.Render(entry)
		}
	}
	return s
}
