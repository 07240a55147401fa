package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// ComponentTree wraps a lipgloss tree with the shared styling
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a new component tree with appropriate styling
func NewComponentTree(title string) *ComponentTree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	t.Root(title)

	return &ComponentTree{
		tree: t,
	}
}

// Tree returns the underlying tree
func (c *ComponentTree) Tree() *tree.Tree {
	return c.tree
}

// AddChild adds a child node to the root branch
func (c *ComponentTree) AddChild(child any) *tree.Tree {
	return c.tree.Child(child)
}

// Render renders the tree to a string
func (c *ComponentTree) Render() string {
	return c.tree.String()
}

// DomainTree creates a tree branch for one API domain, titled with the
// domain name and its tool count
func DomainTree(name string, toolCount int) *ComponentTree {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		DomainText(name),
		" ",
		InfoStyle.Render(fmt.Sprintf("(%d tools)", toolCount)),
	)
	return NewComponentTree(title)
}

// ToolNode renders a single tool line: name, optional read-only badge and
// a truncated description
func ToolNode(name, description string, readOnly bool) string {
	parts := []string{ToolText(name)}
	if readOnly {
		parts = append(parts, " ", ReadOnlyBadge())
	}
	if description != "" {
		parts = append(parts, "  ", DescriptionText(TruncateString(description, 80)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
