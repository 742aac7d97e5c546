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


package extract

import (
	"strings"

	"github.com/poiesic/docmerge/core"
)

// Raw is the format-independent payload a Reader produces. For text
// and PDF sources Content is plain text; for the Office formats it is
// an HTML intermediate.
type Raw struct {
	Path    string
	Format  core.Format
	Content string
}

// Extractor converts raw content into an ordered block sequence. An
// empty input yields an empty slice, never an error.
type Extractor interface {
	ExtractBlocks(raw Raw) ([]core.ContentBlock, error)
}

// TextExtractor splits plain text into paragraph blocks on blank
// lines.
type TextExtractor struct{}

func (TextExtractor) ExtractBlocks(raw Raw) ([]core.ContentBlock, error) {
	return splitParagraphs(raw.Content), nil
}

// PDFExtractor handles the plain text pulled out of a PDF. Pages are
// separated by form feeds; within a page paragraphs are separated by
// blank lines.
type PDFExtractor struct{}

func (PDFExtractor) ExtractBlocks(raw Raw) ([]core.ContentBlock, error) {
	var blocks []core.ContentBlock
	for _, page := range strings.Split(raw.Content, "\f") {
		blocks = append(blocks, splitParagraphs(page)...)
	}
	return blocks, nil
}

func splitParagraphs(text string) []core.ContentBlock {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []core.ContentBlock
	for _, chunk := range strings.Split(text, "\n\n") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
		if len(lines) == 0 {
			continue
		}
		blocks = append(blocks, core.ContentBlock{
			Kind: core.BlockParagraph,
			Text: strings.Join(lines, " "),
		})
	}
	return blocks
}
