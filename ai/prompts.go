package ai

import (
	"fmt"

	"github.com/poiesic/docmerge/core"
)

// SystemPrompt frames every summarization call.
const SystemPrompt = "You are a helpful assistant that analyzes documents and provides concise summaries."

const executivePromptTemplate = `Create a concise executive summary of the following text in approximately %d words.
Focus on the main themes and the essential details a reader needs to understand the document's purpose.

Text:
%s`

const detailedPromptTemplate = `Create a comprehensive analysis of the following text in approximately %d words.
Cover two aspects:
1. Executive Summary: a clear, concise summary of the entire content
2. Important Information: critical points, key findings, or information that requires special attention

Text:
%s`

// BuildSummaryPrompt renders the user prompt for a summarization call.
// Shared by all provider implementations so prompts stay consistent
// across backends.
func BuildSummaryPrompt(summaryType core.SummaryType, maxLength int, text string) string {
	switch summaryType {
	case core.SummaryDetailed:
		return fmt.Sprintf(detailedPromptTemplate, maxLength, text)
	default:
		return fmt.Sprintf(executivePromptTemplate, maxLength, text)
	}
}
