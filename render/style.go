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


package render

import "time"

// StyleConfig is the declarative style table the renderer consumes.
// Everything about the output's look lives here; the renderer itself
// carries no presentation decisions.
type StyleConfig struct {
	// DocumentTitle is the top-level title of the merged document.
	DocumentTitle string

	// ShowNumbers prefixes section and subsection headings with their
	// assigned numbers.
	ShowNumbers bool

	// SectionLevel is the markdown heading level for sections (1..6).
	// Subsections and content headings nest beneath it.
	SectionLevel int

	// SummaryLabel heads each section's summary block.
	SummaryLabel string

	// DocumentsLabel heads each section's source document list.
	DocumentsLabel string

	// FailuresLabel heads the trailing failures section.
	FailuresLabel string

	// Bullet is the list marker for documents and failures.
	Bullet string

	// TimestampLayout formats the generated-at line.
	TimestampLayout string
}

// DefaultStyle returns the stock style table.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		DocumentTitle:   "Merged Document",
		ShowNumbers:     true,
		SectionLevel:    2,
		SummaryLabel:    "Summary",
		DocumentsLabel:  "Documents Analyzed",
		FailuresLabel:   "Processing Failures",
		Bullet:          "-",
		TimestampLayout: time.RFC1123,
	}
}
