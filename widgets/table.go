package widgets

import (
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"

	"github.com/teakit/teakit/theme"
)

// RowSelectedMsg is emitted when the user presses enter on a table row.
type RowSelectedMsg struct {
	Row table.Row
}

// Table is a themed wrapper around the bubbles table. Column and row
// types are re-used from the underlying component.
type Table struct {
	Model table.Model

	title   string
	focused bool
}

// NewTable creates a table with the given columns and rows.
func NewTable(title string, cols []table.Column, rows []table.Row) *Table {
	height := len(rows) + 1
	if height > 12 {
		height = 12
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(theme.Accent)
	styles.Selected = styles.Selected.Foreground(theme.Primary).Bold(true)
	t.SetStyles(styles)
	return &Table{Model: t, title: title}
}

// Focus gives the table keyboard focus.
func (t *Table) Focus() tea.Cmd {
	t.focused = true
	t.Model.Focus()
	return nil
}

// Blur removes keyboard focus.
func (t *Table) Blur() {
	t.focused = false
	t.Model.Blur()
}

// Focused reports whether the table has focus.
func (t *Table) Focused() bool { return t.focused }

// SetRows replaces the table contents.
func (t *Table) SetRows(rows []table.Row) { t.Model.SetRows(rows) }

// SelectedRow returns the row under the cursor.
func (t *Table) SelectedRow() table.Row { return t.Model.SelectedRow() }

// SetSize adjusts the visible area.
func (t *Table) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// Update handles messages. Enter emits a RowSelectedMsg for the row
// under the cursor.
func (t *Table) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.focused && kmsg.String() == "enter" {
		row := t.Model.SelectedRow()
		return func() tea.Msg { return RowSelectedMsg{Row: row} }
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return cmd
}

// View renders the title and the table.
func (t *Table) View() string {
	if t.title == "" {
		return t.Model.View()
	}
	return theme.TableHeader.Render(t.title) + "\n" + t.Model.View()
}
