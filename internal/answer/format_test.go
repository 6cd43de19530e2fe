package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgallion1/aidemo/internal/corpus"
	"github.com/dgallion1/aidemo/internal/retrieval"
)

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, NoInformation, Format(""))
}

func TestFormat_WhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", Format(" \n\t "))
}

func TestFormat_CollapsesWhitespace(t *testing.T) {
	got := Format("  Pricing   model\n\n\n  is   flat  ")
	assert.Equal(t, "Pricing model is flat", got)
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		"Revenue Targets\nAnnual goals",
		"single line of text",
		"a\nb\nc",
		"Steps:\n- one\n- two",
		"- a\n- b",
	}
	for _, in := range inputs {
		once := Format(in)
		assert.Equal(t, once, Format(once), in)
	}
	assert.Equal(t, "single line of text", Format("single line of text"))
}

func TestFormat_BulletsInsideTextJoinTheLine(t *testing.T) {
	got := Format("Customer Segmentation\nOur target market:\n- Enterprise\n- Mid-Market")
	assert.Equal(t, "Customer Segmentation Our target market: - Enterprise - Mid-Market", got)
}

func TestFormat_RetrievedSection(t *testing.T) {
	context := retrieval.Retrieve("What are the different customer segments and their characteristics?", corpus.SalesStrategy)
	want := "Customer Segmentation " +
		"Our target market is divided into three key segments: " +
		"- Enterprise (Revenue > $100M): Focus on comprehensive solutions " +
		"- Mid-Market ($10M-$100M): Balanced feature set with competitive pricing " +
		"- Small Business (<$10M): Streamlined solutions with essential features"
	assert.Equal(t, want, Format(context))
}

func TestFormat_LeadingBullet(t *testing.T) {
	assert.Equal(t, "\n- only item", Format("- only item"))
	assert.Equal(t, "\n- a - b", Format("- a\n- b"))
	assert.Equal(t, "\n• Discovery • Closing deals", Format("  •Discovery\n•   Closing   deals"))
}
