// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported source document format.
type Format int

const (
	// FormatDocx represents a Word document.
	FormatDocx Format = iota + 1
	// FormatPDF represents a PDF document.
	FormatPDF
	// FormatTxt represents a plain text document.
	FormatTxt
	// FormatPptx represents a PowerPoint presentation.
	FormatPptx
)

// String returns the canonical file extension without the leading dot.
func (f Format) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatPDF:
		return "pdf"
	case FormatTxt:
		return "txt"
	case FormatPptx:
		return "pptx"
	default:
		return "unknown"
	}
}

// ParseFormat maps a document path to its Format by file extension.
// Anything outside the closed set of supported formats fails with
// UnsupportedFormatError.
func ParseFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".docx":
		return FormatDocx, nil
	case ".pdf":
		return FormatPDF, nil
	case ".txt":
		return FormatTxt, nil
	case ".pptx":
		return FormatPptx, nil
	default:
		return 0, &UnsupportedFormatError{Ext: ext}
	}
}

// SummaryType selects the kind of summary requested for a document set.
type SummaryType int

const (
	// SummaryNone disables summarization for the set.
	SummaryNone SummaryType = iota
	// SummaryExecutive requests a short executive summary.
	SummaryExecutive
	// SummaryDetailed requests a detailed summary with key findings.
	SummaryDetailed
)

// String returns the wire name of the summary type.
func (s SummaryType) String() string {
	switch s {
	case SummaryExecutive:
		return "executive"
	case SummaryDetailed:
		return "detailed"
	default:
		return "none"
	}
}

// ParseSummaryType maps a wire name to a SummaryType.
// The empty string maps to SummaryNone.
func ParseSummaryType(s string) (SummaryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SummaryNone, nil
	case "executive":
		return SummaryExecutive, nil
	case "detailed", "comprehensive":
		return SummaryDetailed, nil
	default:
		return SummaryNone, ErrInvalidSummaryType
	}
}

// SourceDocument is a read-only reference to a document on disk.
// Ownership lies with the filesystem, not the pipeline.
type SourceDocument struct {
	Path   string
	Format Format
}

// NewSourceDocument builds a SourceDocument from a path, deriving the
// format from the file extension.
func NewSourceDocument(path string) (SourceDocument, error) {
	format, err := ParseFormat(path)
	if err != nil {
		return SourceDocument{}, err
	}
	return SourceDocument{Path: path, Format: format}, nil
}

// DocumentSet is a named, ordered group of source documents merged into
// one output section. Identity is the name, which must be unique within
// a merge request. Sets are immutable once created.
type DocumentSet struct {
	Name            string
	Documents       []SourceDocument
	SummaryType     SummaryType
	SummaryRequired bool     // when true, summarization failure fails the set
	IncludeSections []string // heading labels to retain; empty or {"all"} keeps everything
}

// WantsSummary reports whether the set requests a summary at all.
func (d DocumentSet) WantsSummary() bool {
	return d.SummaryType != SummaryNone
}

// BlockKind identifies the structural kind of a content block.
type BlockKind int

const (
	// BlockHeading is a heading with an associated level.
	BlockHeading BlockKind = iota + 1
	// BlockParagraph is running paragraph text.
	BlockParagraph
	// BlockTable marks a table; Text carries its markdown rendering.
	BlockTable
)

// ContentBlock is a normalized unit of extracted text.
type ContentBlock struct {
	Kind  BlockKind
	Level int // headings only, 1..6
	Text  string
}

// NormalizedContent is the ordered block sequence produced per source
// document and concatenated per document set.
type NormalizedContent struct {
	Blocks []ContentBlock
}

// Append concatenates blocks onto the sequence in order.
func (n *NormalizedContent) Append(blocks ...ContentBlock) {
	n.Blocks = append(n.Blocks, blocks...)
}

// IsEmpty reports whether the content has no blocks.
func (n NormalizedContent) IsEmpty() bool {
	return len(n.Blocks) == 0
}

// PlainText flattens the block sequence to newline-separated text.
// Used to build summarization prompts.
func (n NormalizedContent) PlainText() string {
	parts := make([]string, 0, len(n.Blocks))
	for _, b := range n.Blocks {
		if t := strings.TrimSpace(b.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// SummaryResult is the outcome of a successful summarization call.
// It is absent (nil), never an empty value, when summarization failed.
type SummaryResult struct {
	Text     string
	Provider string
	Attempts int
}

// Subsection is a numbered sub-part of a section, produced by
// include-section filtering.
type Subsection struct {
	Number  string // dotted path, e.g. "2.1"
	Title   string
	Content NormalizedContent
}

// Section is the numbered, styled unit of the merged document
// corresponding to one document set. The number is assigned from the
// set's position in the request and never reassigned afterwards.
type Section struct {
	Number      string
	Title       string
	Content     NormalizedContent
	Summary     *SummaryResult
	Subsections []Subsection
	Documents   []string // source document names, in set order
	StyleID     string   // consumed only by the renderer
	Note        string   // e.g. filter matched nothing, summary unavailable
}

// MergeResult is the aggregate outcome of one merge request. Sections
// for failed sets are omitted, not blanked; Failures itemizes them.
type MergeResult struct {
	Sections []Section
	Failures map[string]string // document set name -> error description
}

// MergeRequest is the request shape consumed from the external HTTP or
// CLI layer.
type MergeRequest struct {
	InputDir     string
	OutputFile   string
	DocumentSets []DocumentSet
	ContextDocs  []string
}
