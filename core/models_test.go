package core

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "report.docx", want: FormatDocx},
		{path: "slides.PPTX", want: FormatPptx},
		{path: "notes.txt", want: FormatTxt},
		{path: "dir/paper.pdf", want: FormatPDF},
		{path: "archive.zip", wantErr: true},
		{path: "README.md", wantErr: true},
		{path: "noextension", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseFormat(tt.path)
			if tt.wantErr {
				var ufe *UnsupportedFormatError
				if !errors.As(err, &ufe) {
					t.Fatalf("ParseFormat(%q) err = %v, want UnsupportedFormatError", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Fatalf("ParseFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseSummaryType(t *testing.T) {
	tests := []struct {
		in      string
		want    SummaryType
		wantErr bool
	}{
		{in: "", want: SummaryNone},
		{in: "none", want: SummaryNone},
		{in: "executive", want: SummaryExecutive},
		{in: "Detailed", want: SummaryDetailed},
		{in: "comprehensive", want: SummaryDetailed},
		{in: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSummaryType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSummaryType) {
					t.Fatalf("ParseSummaryType(%q) err = %v, want ErrInvalidSummaryType", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSummaryType(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSummaryType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizedContentPlainText(t *testing.T) {
	content := NormalizedContent{Blocks: []ContentBlock{
		{Kind: BlockHeading, Level: 1, Text: "Overview"},
		{Kind: BlockParagraph, Text: "First paragraph."},
		{Kind: BlockParagraph, Text: "   "},
		{Kind: BlockParagraph, Text: "Second paragraph."},
	}}

	want := "Overview\nFirst paragraph.\nSecond paragraph."
	if got := content.PlainText(); got != want {
		t.Fatalf("PlainText() = %q, want %q", got, want)
	}

	var empty NormalizedContent
	if !empty.IsEmpty() {
		t.Fatal("zero NormalizedContent should be empty")
	}
	if empty.PlainText() != "" {
		t.Fatal("empty content should flatten to empty string")
	}
}

func TestNormalizedContentAppend(t *testing.T) {
	a := NormalizedContent{Blocks: []ContentBlock{{Kind: BlockParagraph, Text: "one"}}}
	b := NormalizedContent{Blocks: []ContentBlock{{Kind: BlockParagraph, Text: "two"}}}

	a.Append(b.Blocks...)
	if len(a.Blocks) != 2 || a.Blocks[1].Text != "two" {
		t.Fatalf("Append() produced %+v", a.Blocks)
	}
}
