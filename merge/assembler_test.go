package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docmerge/core"
)

func assemblySet(name string, include ...string) core.DocumentSet {
	return core.DocumentSet{
		Name: name,
		Documents: []core.SourceDocument{
			{Path: "/in/finance/q1.docx", Format: core.FormatDocx},
			{Path: "/in/finance/q2.pdf", Format: core.FormatPDF},
		},
		IncludeSections: include,
	}
}

func structuredContent() core.NormalizedContent {
	var content core.NormalizedContent
	content.Append(core.ContentBlock{Kind: core.BlockParagraph, Text: "Preamble before any heading."})
	content.Append(core.ContentBlock{Kind: core.BlockHeading, Level: 2, Text: "Budget Summary"})
	content.Append(core.ContentBlock{Kind: core.BlockParagraph, Text: "Spending held flat."})
	content.Append(core.ContentBlock{Kind: core.BlockHeading, Level: 3, Text: "Capital"})
	content.Append(core.ContentBlock{Kind: core.BlockParagraph, Text: "Two new licenses."})
	content.Append(core.ContentBlock{Kind: core.BlockHeading, Level: 2, Text: "Risks"})
	content.Append(core.ContentBlock{Kind: core.BlockParagraph, Text: "Vendor lock-in."})
	return content
}

func TestAssemble_NoFilter(t *testing.T) {
	content := structuredContent()
	section := Assemble(assemblySet("Finance"), content, nil, 2)

	assert.Equal(t, "2", section.Number)
	assert.Equal(t, "Finance", section.Title)
	assert.Equal(t, StyleSection, section.StyleID)
	assert.Equal(t, []string{"q1.docx", "q2.pdf"}, section.Documents)
	assert.Equal(t, content.Blocks, section.Content.Blocks)
	assert.Empty(t, section.Subsections)
	assert.Empty(t, section.Note)
}

func TestAssemble_AllDisablesFilter(t *testing.T) {
	content := structuredContent()
	section := Assemble(assemblySet("Finance", "All"), content, nil, 1)
	assert.Equal(t, content.Blocks, section.Content.Blocks)
	assert.Empty(t, section.Subsections)
}

func TestAssemble_IncludeFilter(t *testing.T) {
	content := structuredContent()
	section := Assemble(assemblySet("Finance", "risks", "budget_summary"), content, nil, 3)

	require.Len(t, section.Subsections, 2)

	// Subsections follow filter order, not document order.
	assert.Equal(t, "3.1", section.Subsections[0].Number)
	assert.Equal(t, "Risks", section.Subsections[0].Title)
	require.Len(t, section.Subsections[0].Content.Blocks, 1)
	assert.Equal(t, "Vendor lock-in.", section.Subsections[0].Content.Blocks[0].Text)

	// The matched heading encloses its subheadings.
	assert.Equal(t, "3.2", section.Subsections[1].Number)
	assert.Equal(t, "Budget Summary", section.Subsections[1].Title)
	require.Len(t, section.Subsections[1].Content.Blocks, 3)

	assert.Empty(t, section.Note)
	assert.True(t, section.Content.IsEmpty(), "filtered content lives in subsections only")
}

func TestAssemble_LabelNormalization(t *testing.T) {
	content := structuredContent()
	section := Assemble(assemblySet("Finance", "  BUDGET   summary "), content, nil, 1)

	require.Len(t, section.Subsections, 1)
	assert.Equal(t, "Budget Summary", section.Subsections[0].Title)
}

func TestAssemble_UnmatchedFilter(t *testing.T) {
	content := structuredContent()
	section := Assemble(assemblySet("Finance", "appendix"), content, nil, 4)

	assert.Equal(t, "4", section.Number, "unmatched filter keeps the assigned number")
	assert.Empty(t, section.Subsections)
	assert.Equal(t, noMatchNote, section.Note)
}

func TestAssemble_SummaryAttached(t *testing.T) {
	summary := &core.SummaryResult{Text: "flat spending, vendor risk", Provider: "mock", Attempts: 1}
	section := Assemble(assemblySet("Finance"), structuredContent(), summary, 1)
	require.NotNil(t, section.Summary)
	assert.Equal(t, "flat spending, vendor risk", section.Summary.Text)
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Budget Summary", want: "budget_summary"},
		{in: "  mixed   CASE  words ", want: "mixed_case_words"},
		{in: "single", want: "single"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeLabel(tt.in))
	}
}
