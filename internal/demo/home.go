package demo

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teakit/teakit/internal/config"
	"github.com/teakit/teakit/theme"
)

// HomeScreen is the demo's entry menu.
type HomeScreen struct {
	menu Menu
}

var _ Screen = (*HomeScreen)(nil)

// NewHome creates the home screen.
func NewHome(cfg config.Config) *HomeScreen {
	push := func(s Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return PushScreenMsg{Screen: s} }
		}
	}

	items := []MenuItem{
		{Label: "FORMS", Action: push(NewFormScreen())},
		{Label: "TABLE", Action: push(NewTableScreen())},
		{Label: "TREE", Action: push(NewTreeScreen())},
		{Label: "COUNTDOWN", Action: push(NewTimerScreen(cfg.Timer.Duration))},
		{Label: "DIALOGS", Action: push(NewDialogScreen())},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{menu: NewMenu(items)}
}

func (s *HomeScreen) Init() tea.Cmd { return nil }

func (s *HomeScreen) Title() string { return "Widget Gallery" }

func (s *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	title := theme.Label.Render("teakit widgets") + "\n" +
		theme.Hint.Render("validated inputs, forms, tables, trees and timers") + "\n\n"
	body := title + s.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.TrimRight(body, "\n"))
}
