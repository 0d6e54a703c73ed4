package widgets

import (
	tea "charm.land/bubbletea/v2"
	ltree "charm.land/lipgloss/v2/tree"

	"github.com/teakit/teakit/theme"
)

// TreeNode is one entry of a Tree. Children of a collapsed node are
// neither rendered nor reachable by the cursor.
type TreeNode struct {
	Label    string
	Children []*TreeNode
	Expanded bool
}

// Node builds a TreeNode with the given children. Nodes start
// collapsed.
func Node(label string, children ...*TreeNode) *TreeNode {
	return &TreeNode{Label: label, Children: children}
}

// NodeSelectedMsg is emitted when the user presses enter on a leaf.
type NodeSelectedMsg struct {
	Label string
}

// Tree is an expandable tree view with cursor navigation.
type Tree struct {
	root    *TreeNode
	cursor  int
	focused bool
}

// NewTree creates a tree view rooted at root. The root starts
// expanded.
func NewTree(root *TreeNode) *Tree {
	root.Expanded = true
	return &Tree{root: root}
}

// Focus gives the tree keyboard focus.
func (t *Tree) Focus() tea.Cmd {
	t.focused = true
	return nil
}

// Blur removes keyboard focus.
func (t *Tree) Blur() { t.focused = false }

// Focused reports whether the tree has focus.
func (t *Tree) Focused() bool { return t.focused }

// visible returns the nodes reachable from the root in render order.
func (t *Tree) visible() []*TreeNode {
	var out []*TreeNode
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		out = append(out, n)
		if !n.Expanded {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.root)
	return out
}

// Selected returns the node under the cursor.
func (t *Tree) Selected() *TreeNode {
	nodes := t.visible()
	if t.cursor >= len(nodes) {
		t.cursor = len(nodes) - 1
	}
	return nodes[t.cursor]
}

// Update handles keyboard navigation: up/down move the cursor, right
// expands, left collapses, enter toggles a branch or selects a leaf.
func (t *Tree) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	node := t.Selected()
	switch kmsg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.visible())-1 {
			t.cursor++
		}
	case "right", "l":
		if len(node.Children) > 0 {
			node.Expanded = true
		}
	case "left", "h":
		if node.Expanded && len(node.Children) > 0 {
			node.Expanded = false
		}
	case "enter":
		if len(node.Children) > 0 {
			node.Expanded = !node.Expanded
		} else {
			label := node.Label
			return func() tea.Msg { return NodeSelectedMsg{Label: label} }
		}
	}
	return nil
}

// View renders the tree with lipgloss branch guides.
func (t *Tree) View() string {
	index := 0
	rendered := t.render(t.root, &index)
	if branch, ok := rendered.(*ltree.Tree); ok {
		return branch.String()
	}
	return rendered.(string)
}

// render walks visible nodes in the same order as visible(), styling
// the cursor row and marking expandable branches.
func (t *Tree) render(n *TreeNode, index *int) any {
	label := n.Label
	if len(n.Children) > 0 {
		if n.Expanded {
			label = "▾ " + label
		} else {
			label = "▸ " + label
		}
	}
	if *index == t.cursor && t.focused {
		label = theme.Selected.Render(label)
	} else {
		label = theme.Unselected.Render(label)
	}
	*index++

	if !n.Expanded || len(n.Children) == 0 {
		return label
	}
	branch := ltree.Root(label).EnumeratorStyle(theme.TreeBranch)
	for _, c := range n.Children {
		branch = branch.Child(t.render(c, index))
	}
	return branch
}
