package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/aidemo/internal/doctree"
)

func TestSplit_SalesStrategy(t *testing.T) {
	sections := Default().Sections()
	require.Len(t, sections, 7)

	want := []string{
		"Sales Strategy and Business Development Guide",
		"Customer Segmentation",
		"Sales Approach",
		"Value Proposition",
		"Account Management",
		"Sales Best Practices",
		"Revenue Targets",
	}
	for i, heading := range want {
		assert.Equal(t, heading, sections[i].Heading())
		assert.Equal(t, i, sections[i].Index)
	}
}

func TestSplit_BlankSegmentsKeepTheirIndex(t *testing.T) {
	sections := Split("1. alpha\n2.   \n3. gamma")
	require.Len(t, sections, 2)
	assert.Equal(t, "alpha", sections[0].Text)
	assert.Equal(t, 0, sections[0].Index)
	assert.Equal(t, "gamma", sections[1].Text)
	assert.Equal(t, 2, sections[1].Index)
}

func TestSplit_EmptySegmentsTakeNoIndex(t *testing.T) {
	sections := Split("1.2. alpha 3.4. beta")
	require.Len(t, sections, 2)
	assert.Equal(t, 0, sections[0].Index)
	assert.Equal(t, 1, sections[1].Index)
}

func TestSplit_KeepsRawText(t *testing.T) {
	sections := Split("1. alpha  \n")
	require.Len(t, sections, 1)
	assert.Equal(t, " alpha  \n", sections[0].Raw)
	assert.Equal(t, "alpha", sections[0].Text)
}

func TestSplit_EmptyInput(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("1.2.3."))
}

func TestSplit_NoDelimiter(t *testing.T) {
	sections := Split("just one block of text")
	require.Len(t, sections, 1)
	assert.Equal(t, "just one block of text", sections[0].Text)
}

func TestSplit_MultiDigitDelimiter(t *testing.T) {
	sections := Split("10. ten\n11. eleven")
	require.Len(t, sections, 2)
	assert.Equal(t, "ten", sections[0].Text)
	assert.Equal(t, "eleven", sections[1].Text)
}

func TestFromTree(t *testing.T) {
	tree := &doctree.DocTree{
		Title: "Guide",
		Children: []*doctree.DocNode{
			{Title: "1. Pricing", Text: "Flat fee."},
			{Title: "2. Support", Text: "Around the clock."},
		},
	}
	c := FromTree(tree)
	assert.Equal(t, "Guide", c.Title)

	sections := c.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "Guide", sections[0].Text)
	assert.Equal(t, "Pricing\nFlat fee.", sections[1].Text)
	assert.Equal(t, "Support\nAround the clock.", sections[2].Text)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("   "))
	assert.Equal(t, 3, EstimateTokens("one two three"))
	assert.Equal(t, 133, EstimateTokens(repeatWord("word", 100)))
}

func repeatWord(w string, n int) string {
	out := make([]byte, 0, n*(len(w)+1))
	for i := 0; i < n; i++ {
		out = append(out, w...)
		out = append(out, ' ')
	}
	return string(out)
}
