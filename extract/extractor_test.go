package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docmerge/core"
)

func TestTextExtractor(t *testing.T) {
	t.Run("blank line separated paragraphs", func(t *testing.T) {
		raw := Raw{Format: core.FormatTxt, Content: "First paragraph.\n\nSecond paragraph\nwith a continuation line.\n"}
		blocks, err := TextExtractor{}.ExtractBlocks(raw)
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, core.BlockParagraph, blocks[0].Kind)
		assert.Equal(t, "First paragraph.", blocks[0].Text)
		assert.Equal(t, "Second paragraph with a continuation line.", blocks[1].Text)
	})

	t.Run("windows line endings", func(t *testing.T) {
		raw := Raw{Format: core.FormatTxt, Content: "one\r\n\r\ntwo"}
		blocks, err := TextExtractor{}.ExtractBlocks(raw)
		require.NoError(t, err)
		require.Len(t, blocks, 2)
	})

	t.Run("empty input yields no blocks", func(t *testing.T) {
		blocks, err := TextExtractor{}.ExtractBlocks(Raw{Format: core.FormatTxt})
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})

	t.Run("whitespace only yields no blocks", func(t *testing.T) {
		blocks, err := TextExtractor{}.ExtractBlocks(Raw{Format: core.FormatTxt, Content: "  \n\n \n"})
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestPDFExtractor(t *testing.T) {
	raw := Raw{Format: core.FormatPDF, Content: "page one text\fpage two text\n\nsecond paragraph"}
	blocks, err := PDFExtractor{}.ExtractBlocks(raw)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "page one text", blocks[0].Text)
	assert.Equal(t, "page two text", blocks[1].Text)
	assert.Equal(t, "second paragraph", blocks[2].Text)
}

func TestHTMLExtractor(t *testing.T) {
	t.Run("headings paragraphs and lists", func(t *testing.T) {
		raw := Raw{Content: "<h1>Overview</h1><p>Intro text.</p><h3>Details</h3><ul><li>first</li><li>second</li></ul>"}
		blocks, err := HTMLExtractor{}.ExtractBlocks(raw)
		require.NoError(t, err)
		require.Len(t, blocks, 5)

		assert.Equal(t, core.BlockHeading, blocks[0].Kind)
		assert.Equal(t, 1, blocks[0].Level)
		assert.Equal(t, "Overview", blocks[0].Text)

		assert.Equal(t, core.BlockParagraph, blocks[1].Kind)
		assert.Equal(t, "Intro text.", blocks[1].Text)

		assert.Equal(t, core.BlockHeading, blocks[2].Kind)
		assert.Equal(t, 3, blocks[2].Level)

		assert.Equal(t, "first", blocks[3].Text)
		assert.Equal(t, "second", blocks[4].Text)
	})

	t.Run("tables become markdown blocks", func(t *testing.T) {
		raw := Raw{Content: "<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>"}
		blocks, err := HTMLExtractor{}.ExtractBlocks(raw)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, core.BlockTable, blocks[0].Kind)
		assert.Contains(t, blocks[0].Text, "a")
		assert.Contains(t, blocks[0].Text, "d")
	})

	t.Run("empty elements are skipped", func(t *testing.T) {
		raw := Raw{Content: "<h2>  </h2><p></p><p>kept</p>"}
		blocks, err := HTMLExtractor{}.ExtractBlocks(raw)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "kept", blocks[0].Text)
	})

	t.Run("empty input yields no blocks", func(t *testing.T) {
		blocks, err := HTMLExtractor{}.ExtractBlocks(Raw{})
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestDocxParagraphTag(t *testing.T) {
	tests := []struct {
		style string
		tag   string
	}{
		{style: "Heading1", tag: "h1"},
		{style: "Heading4", tag: "h4"},
		{style: "Heading9", tag: "h6"},
		{style: "Title", tag: "h1"},
		{style: "Normal", tag: "p"},
		{style: "", tag: "p"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tag, docxParagraphTag(tt.style), "style %q", tt.style)
	}
}
