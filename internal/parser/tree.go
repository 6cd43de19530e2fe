package parser

import (
	"path/filepath"
	"strings"

	"github.com/dgallion1/aidemo/internal/doctree"
)

// treeBuilder nests sections by heading level and accumulates body text into
// the innermost open section.
type treeBuilder struct {
	root    *doctree.DocNode
	stack   []stackEntry
	pending strings.Builder
}

type stackEntry struct {
	node  *doctree.DocNode
	level int
}

func newTreeBuilder() *treeBuilder {
	root := &doctree.DocNode{}
	return &treeBuilder{
		root:  root,
		stack: []stackEntry{{node: root, level: 0}},
	}
}

// heading opens a new section at level, closing any open section at the same
// or a deeper level.
func (b *treeBuilder) heading(level int, title string) {
	b.flush()
	node := &doctree.DocNode{Title: title}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Children = append(parent.Children, node)
	b.stack = append(b.stack, stackEntry{node: node, level: level})
}

// text appends a paragraph to the current section.
func (b *treeBuilder) text(t string) {
	if t == "" {
		return
	}
	if b.pending.Len() > 0 {
		b.pending.WriteString("\n\n")
	}
	b.pending.WriteString(t)
}

func (b *treeBuilder) flush() {
	t := strings.TrimSpace(b.pending.String())
	if t != "" {
		top := b.stack[len(b.stack)-1].node
		if top.Text != "" {
			top.Text += "\n\n" + t
		} else {
			top.Text = t
		}
	}
	b.pending.Reset()
}

// build finishes the tree. Text that appeared before the first heading is
// kept as an untitled leading node.
func (b *treeBuilder) build(title string) *doctree.DocTree {
	b.flush()
	tree := &doctree.DocTree{Title: title, Children: b.root.Children}
	if b.root.Text != "" {
		lead := &doctree.DocNode{Text: b.root.Text}
		tree.Children = append([]*doctree.DocNode{lead}, tree.Children...)
	}
	return tree
}

// titleFromFilename strips the directory and the given extensions.
func titleFromFilename(filename string, exts ...string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	for _, ext := range exts {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}
