package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser_RowsBecomeNumberedSections(t *testing.T) {
	input := "topic,answer,owner\nPricing,Flat monthly fee,finance\n,,\nSupport,Around the clock,\n"

	tree, err := (&CSVParser{}).Parse(strings.NewReader(input), "faq.csv")
	require.NoError(t, err)

	assert.Equal(t, "faq", tree.Title)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, "1. Pricing", tree.Children[0].Title)
	assert.Equal(t, "answer: Flat monthly fee\nowner: finance", tree.Children[0].Text)
	assert.Equal(t, 2, tree.Children[0].Page)
	assert.Equal(t, "2. Support", tree.Children[1].Title)
	assert.Equal(t, "answer: Around the clock", tree.Children[1].Text)
	assert.Equal(t, 4, tree.Children[1].Page)
}

func TestCSVParser_ExtraCellsWithoutHeader(t *testing.T) {
	tree, err := (&CSVParser{}).Parse(strings.NewReader("name\nAcme,extra"), "x.csv")
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "extra", tree.Children[0].Text)
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	tree, err := (&CSVParser{}).Parse(strings.NewReader("a,b\n"), "empty.csv")
	require.NoError(t, err)
	assert.Empty(t, tree.Children)
}
