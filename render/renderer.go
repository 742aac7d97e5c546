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


// Package render turns a merge result into the output artifact.
//
// The renderer emits markdown. Given the same result and style, the
// output is byte-identical apart from the generated-at timestamp,
// which comes from an injectable clock.
package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/docmerge/core"
)

// ErrNilResult is returned when Render is handed a nil merge result.
var ErrNilResult = errors.New("merge result required")

// Renderer writes merge results as markdown.
type Renderer struct {
	clock func() time.Time
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClock replaces the wall clock. Tests use this to pin the
// generated-at line.
func WithClock(clock func() time.Time) RendererOption {
	return func(r *Renderer) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// NewRenderer creates a renderer using the system clock.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{clock: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render emits the merged document as markdown. Sections appear in
// result order; failures, when present, trail the document sorted by
// set name.
func (r *Renderer) Render(result *core.MergeResult, style StyleConfig) ([]byte, error) {
	if result == nil {
		return nil, ErrNilResult
	}

	var sb strings.Builder
	sb.WriteString("# " + style.DocumentTitle + "\n\n")
	sb.WriteString("_Generated " + r.clock().Format(style.TimestampLayout) + "_\n")

	for _, section := range result.Sections {
		r.renderSection(&sb, section, style)
	}

	if len(result.Failures) > 0 {
		r.renderFailures(&sb, result.Failures, style)
	}

	return []byte(sb.String()), nil
}

func (r *Renderer) renderSection(sb *strings.Builder, section core.Section, style StyleConfig) {
	sb.WriteString("\n" + heading(style.SectionLevel))
	if style.ShowNumbers {
		sb.WriteString(" " + section.Number + ".")
	}
	sb.WriteString(" " + section.Title + "\n")

	if section.Note != "" {
		sb.WriteString("\n> " + section.Note + "\n")
	}

	if section.Summary != nil && section.Summary.Text != "" {
		sb.WriteString("\n" + heading(style.SectionLevel+1) + " " + style.SummaryLabel + "\n\n")
		sb.WriteString(section.Summary.Text + "\n")
	}

	r.renderBlocks(sb, section.Content.Blocks, style.SectionLevel)

	for _, sub := range section.Subsections {
		sb.WriteString("\n" + heading(style.SectionLevel+1))
		if style.ShowNumbers {
			sb.WriteString(" " + sub.Number + ".")
		}
		sb.WriteString(" " + sub.Title + "\n")
		r.renderBlocks(sb, sub.Content.Blocks, style.SectionLevel+1)
	}

	if len(section.Documents) > 0 {
		sb.WriteString("\n" + heading(style.SectionLevel+1) + " " + style.DocumentsLabel + "\n\n")
		for _, name := range section.Documents {
			sb.WriteString(style.Bullet + " " + name + "\n")
		}
	}
}

// renderBlocks writes content blocks with headings offset beneath the
// given base level. Tables are already markdown and pass through.
func (r *Renderer) renderBlocks(sb *strings.Builder, blocks []core.ContentBlock, baseLevel int) {
	for _, block := range blocks {
		switch block.Kind {
		case core.BlockHeading:
			level := baseLevel + block.Level
			if level > 6 {
				level = 6
			}
			sb.WriteString("\n" + heading(level) + " " + block.Text + "\n")
		case core.BlockTable:
			sb.WriteString("\n" + block.Text + "\n")
		default:
			sb.WriteString("\n" + block.Text + "\n")
		}
	}
}

func (r *Renderer) renderFailures(sb *strings.Builder, failures map[string]string, style StyleConfig) {
	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)

	sb.WriteString("\n" + heading(2) + " " + style.FailuresLabel + "\n\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%s **%s**: %s\n", style.Bullet, name, failures[name]))
	}
}

func heading(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level)
}
