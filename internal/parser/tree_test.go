package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeBuilder_KeepsPreamble(t *testing.T) {
	b := newTreeBuilder()
	b.text("Before any heading.")
	b.heading(1, "First")
	b.text("Body.")
	b.heading(2, "Nested")
	b.heading(1, "Second")

	tree := b.build("doc")
	require.Len(t, tree.Children, 3)
	assert.Equal(t, "", tree.Children[0].Title)
	assert.Equal(t, "Before any heading.", tree.Children[0].Text)
	assert.Equal(t, "First", tree.Children[1].Title)
	assert.Equal(t, "Body.", tree.Children[1].Text)
	require.Len(t, tree.Children[1].Children, 1)
	assert.Equal(t, "Nested", tree.Children[1].Children[0].Title)
	assert.Equal(t, "Second", tree.Children[2].Title)
	assert.Equal(t, 4, tree.NodeCount())
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "guide", titleFromFilename("/srv/docs/guide.md", ".md", ".markdown"))
	assert.Equal(t, "Report", titleFromFilename("Report.PDF", ".pdf"))
	assert.Equal(t, "notes.txt", titleFromFilename("notes.txt", ".md"))
}

func TestForFile(t *testing.T) {
	for name, want := range map[string]Parser{
		"a.txt":      &TextParser{},
		"a.MD":       &MarkdownParser{},
		"a.markdown": &MarkdownParser{},
		"a.csv":      &CSVParser{},
		"a.htm":      &HTMLParser{},
		"a.docx":     &DOCXParser{},
		"a.pdf":      &PDFParser{FallbackPdftotext: true},
	} {
		got, err := ForFile(name, Options{PDFFallbackPdftotext: true})
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		assert.True(t, IsSupportedExtension(name), name)
	}

	_, err := ForFile("a.xlsx", Options{})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, IsSupportedExtension("a.xlsx"))
}
