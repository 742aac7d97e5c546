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


package merge

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poiesic/docmerge/core"
)

// Style identifiers attached to assembled sections. Only the renderer
// interprets them.
const (
	StyleSection    = "style.section"
	StyleSubsection = "style.subsection"
)

// noMatchNote is recorded on a section whose include filter matched
// nothing. The section stays valid and keeps its number.
const noMatchNote = "no content matched the requested sections"

// Assemble builds the numbered section for a document set. The ordinal
// comes from the set's position in the request (1-based) and is never
// reassigned afterwards.
//
// When the set carries an include filter, blocks are grouped under
// their nearest enclosing heading and the matching groups become
// subsections, numbered in filter order.
func Assemble(set core.DocumentSet, content core.NormalizedContent, summary *core.SummaryResult, ordinal int) core.Section {
	section := core.Section{
		Number:    strconv.Itoa(ordinal),
		Title:     set.Name,
		Summary:   summary,
		Documents: documentNames(set),
		StyleID:   StyleSection,
	}

	if !filterActive(set.IncludeSections) {
		section.Content = content
		return section
	}

	groups := groupByHeading(content.Blocks)
	matched := 0
	for _, label := range set.IncludeSections {
		want := normalizeLabel(label)
		var merged core.NormalizedContent
		title := label
		found := false
		for _, group := range groups {
			if normalizeLabel(group.title) != want {
				continue
			}
			if !found {
				title = group.title
			}
			found = true
			merged.Append(group.blocks...)
		}
		if !found {
			continue
		}
		matched++
		section.Subsections = append(section.Subsections, core.Subsection{
			Number:  fmt.Sprintf("%d.%d", ordinal, matched),
			Title:   title,
			Content: merged,
		})
	}

	if matched == 0 {
		section.Note = noMatchNote
	}
	return section
}

// filterActive reports whether the include list actually restricts
// content. An empty list or a lone "all" keeps everything.
func filterActive(includeSections []string) bool {
	if len(includeSections) == 0 {
		return false
	}
	if len(includeSections) == 1 && normalizeLabel(includeSections[0]) == "all" {
		return false
	}
	return true
}

// normalizeLabel canonicalizes a heading label for matching: trimmed,
// lowercased, spaces collapsed to underscores.
func normalizeLabel(label string) string {
	fields := strings.Fields(strings.ToLower(label))
	return strings.Join(fields, "_")
}

// headingGroup is a heading and the blocks it encloses, up to the next
// heading of the same or a higher level.
type headingGroup struct {
	title  string
	level  int
	blocks []core.ContentBlock
}

func groupByHeading(blocks []core.ContentBlock) []headingGroup {
	var groups []headingGroup
	for i, block := range blocks {
		if block.Kind != core.BlockHeading {
			continue
		}
		group := headingGroup{title: block.Text, level: block.Level}
		for _, next := range blocks[i+1:] {
			if next.Kind == core.BlockHeading && next.Level <= block.Level {
				break
			}
			group.blocks = append(group.blocks, next)
		}
		groups = append(groups, group)
	}
	return groups
}

func documentNames(set core.DocumentSet) []string {
	names := make([]string, len(set.Documents))
	for i, doc := range set.Documents {
		names[i] = filepath.Base(doc.Path)
	}
	return names
}
