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


// Package googleai provides summarization using the Gemini API.
//
// The primary path uses the langchaingo googleai client. If the client
// library fails to initialize (typically an authentication problem),
// the constructor falls back once to a plain HTTP client against the
// public generativelanguage endpoint before giving up. The fallback
// deliberately bypasses the client library; see restClient.
package googleai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/docmerge/ai"
	"github.com/poiesic/docmerge/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Summarizer implements ai.Summarizer using the Gemini API. Exactly
// one of client and fallback is set.
type Summarizer struct {
	client      llms.Model
	fallback    *restClient
	apiKey      string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *slog.Logger
}

// newSummarizer is the internal constructor returning the concrete type.
func newSummarizer(ctx context.Context, config *ai.Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Provider != ai.ProviderGoogleAI {
		return nil, errors.New("googleai summarizer: provider must be googleai")
	}

	s := &Summarizer{
		apiKey:      config.APIKey,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		timeout:     config.RequestTimeout,
		logger:      slog.Default().With("component", "googleai-summarizer"),
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(config.APIKey),
		googleai.WithDefaultModel(config.Model),
	)
	if err != nil {
		// Single fallback to the raw HTTP endpoint, matching the one
		// retry the gateway contract allows for initialization failures.
		s.logger.Warn("client library initialization failed, falling back to direct HTTP", "err", err)
		s.fallback = newRESTClient(config.APIKey, config.Model, config.RequestTimeout)
		return s, nil
	}

	s.client = client
	return s, nil
}

// NewSummarizer creates a Gemini summarization provider.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(ctx context.Context, config *ai.Config) (ai.Summarizer, error) {
	return newSummarizer(ctx, config)
}

// Name returns the provider identifier.
func (s *Summarizer) Name() string {
	return ai.ProviderGoogleAI
}

// Summarize generates a summary of the given text.
func (s *Summarizer) Summarize(ctx context.Context, text string, summaryType core.SummaryType, maxLength int) (string, error) {
	prompt := ai.BuildSummaryPrompt(summaryType, maxLength, text)
	return s.GenerateContent(ctx, prompt)
}

// GenerateContent generates free-form content from a prompt.
func (s *Summarizer) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.fallback != nil {
		return s.fallback.generateContent(ctx, prompt)
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(ai.SystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content,
		llms.WithTemperature(s.temperature),
		llms.WithMaxTokens(s.maxTokens),
	)
	if err != nil {
		s.logger.Debug("generation call failed", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", errors.New("no candidates returned from model")
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}

// IsAvailable probes for credential presence. A full connectivity
// check would cost a billable call; the configured key is the cheap
// proxy.
func (s *Summarizer) IsAvailable(ctx context.Context) bool {
	return s.apiKey != ""
}

// Close releases resources held by the provider.
func (s *Summarizer) Close() error {
	return nil
}
