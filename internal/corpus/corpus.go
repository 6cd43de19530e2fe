// Package corpus holds the single document the Q&A demo answers from and
// splits it into numbered sections.
package corpus

import (
	"regexp"
	"strings"

	"github.com/dgallion1/aidemo/internal/doctree"
)

// sectionDelimiter matches a numbered heading marker such as "1." or "12.".
var sectionDelimiter = regexp.MustCompile(`\d+\.`)

// Section is one numbered segment of a corpus.
type Section struct {
	Raw   string `json:"-"`
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// Heading returns the first line of the section text.
func (s Section) Heading() string {
	heading, _, _ := strings.Cut(s.Text, "\n")
	return heading
}

// Corpus is an immutable block of text. It is never indexed; sections are
// produced fresh on every call to Sections.
type Corpus struct {
	Title string
	Text  string
}

// Default returns the built-in sales strategy guide.
func Default() Corpus {
	return Corpus{
		Title: "Sales Strategy and Business Development Guide",
		Text:  SalesStrategy,
	}
}

// FromTree renders a parsed document into a corpus.
func FromTree(tree *doctree.DocTree) Corpus {
	return Corpus{
		Title: tree.Title,
		Text:  tree.Render(),
	}
}

// Sections splits the corpus text on numbered headings.
func (c Corpus) Sections() []Section {
	return Split(c.Text)
}

// Split breaks text into sections at every numeral followed by a period.
// The delimiter itself is dropped and the text before "1." becomes its own
// section when it is non-blank. Index counts every non-empty segment, so a
// whitespace-only segment between two delimiters takes up an index even
// though it is not returned.
func Split(text string) []Section {
	parts := sectionDelimiter.Split(text, -1)
	sections := make([]Section, 0, len(parts))
	index := 0
	for _, part := range parts {
		if part == "" {
			continue
		}
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sections = append(sections, Section{
				Raw:   part,
				Text:  trimmed,
				Index: index,
			})
		}
		index++
	}
	return sections
}
