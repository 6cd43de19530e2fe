package doctree

import "strings"

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string     // Document title (from metadata or filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	Title    string     // Section heading (empty for leaf text)
	Text     string     // Text content of this node (may be empty for container nodes)
	Page     int        // Source page/line (0 if N/A)
	Children []*DocNode // Subsections
}

// Render flattens the tree back into plain text: the document title, then
// each node's heading on its own line followed by its text. Numbered headings
// such as "2. Sales Approach" survive intact, which is what section splitting
// keys on.
func (t *DocTree) Render() string {
	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(t.Title)
		sb.WriteString("\n\n")
	}
	for _, child := range t.Children {
		renderNode(&sb, child)
	}
	return strings.TrimSpace(sb.String())
}

func renderNode(sb *strings.Builder, n *DocNode) {
	if n.Title != "" {
		sb.WriteString(n.Title)
		sb.WriteString("\n")
	}
	if n.Text != "" {
		sb.WriteString(n.Text)
		sb.WriteString("\n")
	}
	if n.Title != "" || n.Text != "" {
		sb.WriteString("\n")
	}
	for _, child := range n.Children {
		renderNode(sb, child)
	}
}

// NodeCount returns the number of nodes below the root.
func (t *DocTree) NodeCount() int {
	var count func([]*DocNode) int
	count = func(nodes []*DocNode) int {
		n := len(nodes)
		for _, c := range nodes {
			n += count(c.Children)
		}
		return n
	}
	return count(t.Children)
}
