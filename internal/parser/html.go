package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dgallion1/aidemo/internal/doctree"
)

// HTMLParser handles HTML files. The <title> element, when present, names
// the tree; h1-h6 open sections.
type HTMLParser struct{}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3, atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

// skipped elements never contribute text.
var skipped = map[atom.Atom]bool{
	atom.Head: true, atom.Script: true, atom.Style: true, atom.Noscript: true,
	atom.Nav: true, atom.Header: true, atom.Footer: true, atom.Template: true,
}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := titleFromFilename(filename, ".html", ".htm")
	if n := findElement(doc, atom.Title); n != nil {
		if t := collapsedText(n); t != "" {
			title = t
		}
	}

	b := newTreeBuilder()
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipped[n.DataAtom] {
				return
			}
			if level, ok := headingLevels[n.DataAtom]; ok {
				b.heading(level, collapsedText(n))
				return
			}
			switch n.DataAtom {
			case atom.Li:
				if t := collapsedText(n); t != "" {
					b.text(listMarker(n) + " " + t)
				}
				return
			case atom.Pre:
				b.text(strings.TrimSpace(rawText(n)))
				return
			case atom.P, atom.Td, atom.Th, atom.Blockquote, atom.Dt, atom.Dd:
				b.text(collapsedText(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return b.build(title), nil
}

// headingLevel maps a tag name to its heading depth, or 0.
func headingLevel(tag string) int {
	return headingLevels[atom.Lookup([]byte(tag))]
}

// listMarker numbers items of an <ol> by position and dashes the rest.
func listMarker(li *html.Node) string {
	if li.Parent == nil || li.Parent.DataAtom != atom.Ol {
		return "-"
	}
	pos := 1
	for s := li.PrevSibling; s != nil; s = s.PrevSibling {
		if s.DataAtom == atom.Li {
			pos++
		}
	}
	return fmt.Sprintf("%d.", pos)
}

// collapsedText joins the text below n with single spaces, dropping the
// indentation and line breaks of the markup.
func collapsedText(n *html.Node) string {
	return strings.Join(strings.Fields(rawText(n)), " ")
}

func rawText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
