package demo

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teakit/teakit/internal/config"
	"github.com/teakit/teakit/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *Router
	start  tea.Cmd
	width  int
	height int
}

func newAppModel(cfg config.Config, start string) AppModel {
	m := AppModel{
		router: NewRouter(NewHome(cfg)),
	}
	if s := screenFor(cfg, start); s != nil {
		m.start = m.router.Push(s)
	}
	return m
}

// screenFor maps a subcommand name to its demo screen.
func screenFor(cfg config.Config, name string) Screen {
	switch name {
	case "form":
		return NewFormScreen()
	case "table":
		return NewTableScreen()
	case "tree":
		return NewTreeScreen()
	case "countdown":
		return NewTimerScreen(cfg.Timer.Duration)
	case "dialogs":
		return NewDialogScreen()
	}
	return nil
}

func (m AppModel) Init() tea.Cmd {
	return m.start
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(EscHandler); ok && h.HandlesEsc() {
				break // the screen dismisses its own modal
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if tooSmall(m.width, m.height) {
		v.SetContent(renderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := renderHeader(title, m.width)

	hints := []KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(KeyHintProvider); ok {
		hints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := renderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(renderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program at the home menu.
func Run(cfg config.Config) error {
	return RunScreen(cfg, "")
}

// RunScreen starts the program with the named demo screen already
// pushed on top of the home menu. Unknown names fall back to home.
func RunScreen(cfg config.Config, name string) error {
	if cfg.UI.Accent != "" {
		theme.SetAccent(cfg.UI.Accent)
	}

	p := tea.NewProgram(newAppModel(cfg, name))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
