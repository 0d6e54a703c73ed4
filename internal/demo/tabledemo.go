package demo

import (
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teakit/teakit/theme"
	"github.com/teakit/teakit/widgets"
)

// TableScreen shows a navigable data table.
type TableScreen struct {
	table  *widgets.Table
	status string
}

var _ Screen = (*TableScreen)(nil)

// NewTableScreen creates the table demo.
func NewTableScreen() *TableScreen {
	cols := []table.Column{
		{Title: "Language", Width: 12},
		{Title: "Year", Width: 6},
		{Title: "Paradigm", Width: 16},
	}
	rows := []table.Row{
		{"Go", "2009", "concurrent"},
		{"Rust", "2015", "systems"},
		{"Python", "1991", "dynamic"},
		{"Haskell", "1990", "functional"},
		{"Erlang", "1986", "actor"},
	}
	return &TableScreen{table: widgets.NewTable("Languages", cols, rows)}
}

func (s *TableScreen) Init() tea.Cmd { return s.table.Focus() }

func (s *TableScreen) Title() string { return "Table" }

func (s *TableScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if sel, ok := msg.(widgets.RowSelectedMsg); ok {
		s.status = "picked " + sel.Row[0] + " (" + sel.Row[1] + ")"
		return s, nil
	}
	return s, s.table.Update(msg)
}

func (s *TableScreen) View(width, height int) string {
	body := s.table.View()
	if s.status != "" {
		body += "\n\n" + theme.Valid.Render(s.status)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
