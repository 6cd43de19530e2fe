package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/aidemo/internal/doctree"
)

// MarkdownParser handles Markdown files using goldmark. List items keep
// their markers so numbered and bulleted lines survive into the corpus.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	b := newTreeBuilder()

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			b.heading(h.Level, inlineText(h, src))
			continue
		}
		b.text(blockText(n, src))
	}

	return b.build(titleFromFilename(filename, ".md", ".markdown")), nil
}

// blockText renders a block node as plain text.
func blockText(n ast.Node, src []byte) string {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		return inlineText(node, src)
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		return rawLines(node, src)
	case *ast.List:
		return listText(node, src)
	case *ast.ThematicBreak:
		return ""
	}

	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := blockText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

func listText(list *ast.List, src []byte) string {
	var lines []string
	num := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "-"
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d.", num)
			num++
		}
		lines = append(lines, marker+" "+blockText(item, src))
	}
	return strings.Join(lines, "\n")
}

func rawLines(n ast.Node, src []byte) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimSpace(buf.String())
}

// inlineText concatenates the text of n's inline descendants.
func inlineText(n ast.Node, src []byte) string {
	var buf strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
