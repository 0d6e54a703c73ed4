package demo

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teakit/teakit/theme"
	"github.com/teakit/teakit/widgets"
)

// TreeScreen shows an expandable tree view.
type TreeScreen struct {
	tree   *widgets.Tree
	status string
}

var _ Screen = (*TreeScreen)(nil)

// NewTreeScreen creates the tree demo.
func NewTreeScreen() *TreeScreen {
	root := widgets.Node("project",
		widgets.Node("cmd",
			widgets.Node("main.go"),
		),
		widgets.Node("internal",
			widgets.Node("server",
				widgets.Node("server.go"),
				widgets.Node("routes.go"),
			),
			widgets.Node("store",
				widgets.Node("store.go"),
			),
		),
		widgets.Node("go.mod"),
	)
	return &TreeScreen{tree: widgets.NewTree(root)}
}

func (s *TreeScreen) Init() tea.Cmd { return s.tree.Focus() }

func (s *TreeScreen) Title() string { return "Tree" }

func (s *TreeScreen) KeyHints() []KeyHint {
	return []KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Collapse / expand"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TreeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if sel, ok := msg.(widgets.NodeSelectedMsg); ok {
		s.status = "opened " + sel.Label
		return s, nil
	}
	return s, s.tree.Update(msg)
}

func (s *TreeScreen) View(width, height int) string {
	body := s.tree.View()
	if s.status != "" {
		body += "\n\n" + theme.Valid.Render(s.status)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
