package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/aidemo/internal/doctree"
)

// CSVParser handles CSV files. The first row names the columns; every data
// row becomes a numbered section titled by its first cell, with the remaining
// cells listed as "column: value" lines.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: titleFromFilename(filename, ".csv"),
	}
	if len(records) < 2 {
		return tree, nil
	}

	headers := records[0]
	for i, row := range records[1:] {
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}

		var text strings.Builder
		for j, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			if col := j + 1; col < len(headers) {
				text.WriteString(headers[col] + ": ")
			}
			text.WriteString(cell)
		}

		tree.Children = append(tree.Children, &doctree.DocNode{
			Title: fmt.Sprintf("%d. %s", len(tree.Children)+1, strings.TrimSpace(row[0])),
			Text:  text.String(),
			Page:  i + 2, // source line, header is line 1
		})
	}

	return tree, nil
}
