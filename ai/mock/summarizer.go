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


// Package mock provides a test double for the ai.Summarizer interface.
//
// The mock allows tests to run without network access and enables
// controlled, deterministic behavior through injectable functions.
package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/docmerge/core"
)

// MockSummarizer is a test double for ai.Summarizer. It allows custom
// behavior injection via function fields and is safe for concurrent
// use in orchestrator tests.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set. If nil, the default
	// echoes a truncated form of the input.
	SummarizeFunc func(ctx context.Context, text string, summaryType core.SummaryType, maxLength int) (string, error)

	// GenerateContentFunc is called by GenerateContent if set.
	GenerateContentFunc func(ctx context.Context, prompt string) (string, error)

	// Available controls IsAvailable. Defaults to true.
	Available bool

	mu        sync.Mutex
	callCount int
}

// NewMockSummarizer creates a mock summarizer with default behavior.
// Note: returns concrete type to allow test assertions.
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{Available: true}
}

// Name identifies the mock in results and logs.
func (m *MockSummarizer) Name() string {
	return "mock"
}

// Summarize returns a deterministic summary of the input.
// Default behavior: the first 10 words of the text prefixed with the
// summary type name.
func (m *MockSummarizer) Summarize(ctx context.Context, text string, summaryType core.SummaryType, maxLength int) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, text, summaryType, maxLength)
	}

	words := strings.Fields(text)
	if len(words) > 10 {
		words = words[:10]
	}
	return summaryType.String() + " summary: " + strings.Join(words, " "), nil
}

// GenerateContent echoes the prompt by default.
func (m *MockSummarizer) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt)
	}
	return "generated: " + prompt, nil
}

// IsAvailable reports the configured availability.
func (m *MockSummarizer) IsAvailable(ctx context.Context) bool {
	return m.Available
}

// Close is a no-op for the mock.
func (m *MockSummarizer) Close() error {
	return nil
}

// CallCount returns the number of summarize/generate calls made.
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockSummarizer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.SummarizeFunc = nil
	m.GenerateContentFunc = nil
	m.Available = true
}
