package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/aidemo/internal/doctree"
)

// TextParser handles plain text files. Blank lines separate paragraphs; line
// breaks inside a paragraph are kept.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	tree := &doctree.DocTree{
		Title: titleFromFilename(filename, ".txt"),
	}

	var current strings.Builder
	emit := func() {
		if current.Len() > 0 {
			tree.Children = append(tree.Children, &doctree.DocNode{Text: current.String()})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			emit()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	emit()

	return tree, nil
}
