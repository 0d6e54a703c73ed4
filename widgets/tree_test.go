package widgets

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testTree() *Tree {
	return NewTree(Node("root",
		Node("branch",
			Node("leaf-1"),
			Node("leaf-2"),
		),
		Node("lone-leaf"),
	))
}

func TestTree_CollapsedChildrenHidden(t *testing.T) {
	tr := testTree()
	// root expanded, branch collapsed: root, branch, lone-leaf
	if got := len(tr.visible()); got != 3 {
		t.Errorf("visible nodes = %d, want 3", got)
	}
	view := tr.View()
	if strings.Contains(view, "leaf-1") {
		t.Error("collapsed branch rendered its children")
	}
}

func TestTree_ExpandShowsChildren(t *testing.T) {
	tr := testTree()
	tr.Focus()
	tr.Update(tea.KeyPressMsg{Code: tea.KeyDown}) // onto branch
	tr.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	if got := len(tr.visible()); got != 5 {
		t.Errorf("visible nodes = %d, want 5", got)
	}
	if !strings.Contains(tr.View(), "leaf-1") {
		t.Error("expanded branch did not render its children")
	}
}

func TestTree_CollapseMovesChildrenOutOfReach(t *testing.T) {
	tr := testTree()
	tr.Focus()
	tr.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	tr.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	tr.Update(tea.KeyPressMsg{Code: tea.KeyLeft})

	if got := len(tr.visible()); got != 3 {
		t.Errorf("visible nodes = %d, want 3", got)
	}
}

func TestTree_EnterOnLeafEmitsSelection(t *testing.T) {
	tr := testTree()
	tr.Focus()
	tr.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	tr.Update(tea.KeyPressMsg{Code: tea.KeyDown}) // lone-leaf

	cmd := tr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter on a leaf")
	}
	msg, ok := cmd().(NodeSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want NodeSelectedMsg", cmd())
	}
	if msg.Label != "lone-leaf" {
		t.Errorf("got %q", msg.Label)
	}
}

func TestTree_EnterOnBranchToggles(t *testing.T) {
	tr := testTree()
	tr.Focus()
	tr.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	if cmd := tr.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter on a branch should not emit a selection")
	}
	if got := len(tr.visible()); got != 5 {
		t.Errorf("visible nodes = %d, want 5 after toggle", got)
	}
}

func TestTree_CursorStopsAtBounds(t *testing.T) {
	tr := testTree()
	tr.Focus()
	tr.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if tr.Selected().Label != "root" {
		t.Errorf("cursor moved above root: %q", tr.Selected().Label)
	}
	for range 10 {
		tr.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if tr.Selected().Label != "lone-leaf" {
		t.Errorf("cursor overran the last node: %q", tr.Selected().Label)
	}
}
