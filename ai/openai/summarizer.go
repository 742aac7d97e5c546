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


package openai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/docmerge/ai"
	"github.com/poiesic/docmerge/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// availabilityProbeTimeout bounds the local endpoint ping.
const availabilityProbeTimeout = 2 * time.Second

// Summarizer implements ai.Summarizer using OpenAI-compatible chat
// APIs. It covers both the hosted OpenAI API and local inference
// servers (Ollama, LocalAI, vLLM) that speak the same protocol.
type Summarizer struct {
	client      llms.Model
	name        string
	host        string // non-empty for local servers; used by the probe
	apiKey      string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *slog.Logger
}

// newSummarizer is the internal constructor returning the concrete type.
func newSummarizer(config *ai.Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var opts []openai.Option
	switch config.Provider {
	case ai.ProviderLocal:
		// Use "none" as token for local OpenAI-compatible services
		// that don't require authentication.
		opts = []openai.Option{
			openai.WithBaseURL(config.Host),
			openai.WithToken("none"),
			openai.WithModel(config.Model),
		}
	case ai.ProviderOpenAI:
		opts = []openai.Option{
			openai.WithToken(config.APIKey),
			openai.WithModel(config.Model),
		}
	default:
		return nil, errors.New("openai summarizer: provider must be local or openai")
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		client:      client,
		name:        config.Provider,
		host:        config.Host,
		apiKey:      config.APIKey,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		timeout:     config.RequestTimeout,
		logger:      slog.Default().With("component", "openai-summarizer", "provider", config.Provider),
	}, nil
}

// NewSummarizer creates a summarization provider for the hosted OpenAI
// API or a local OpenAI-compatible server, depending on the configured
// provider identifier.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(config *ai.Config) (ai.Summarizer, error) {
	return newSummarizer(config)
}

// Name returns the configured provider identifier.
func (s *Summarizer) Name() string {
	return s.name
}

// Summarize generates a summary of the given text.
func (s *Summarizer) Summarize(ctx context.Context, text string, summaryType core.SummaryType, maxLength int) (string, error) {
	prompt := ai.BuildSummaryPrompt(summaryType, maxLength, text)
	return s.generate(ctx, prompt)
}

// GenerateContent generates free-form content from a prompt.
func (s *Summarizer) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt)
}

func (s *Summarizer) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

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
		return "", errors.New("no choices returned from model")
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}

// IsAvailable probes the provider. For the hosted API this is a
// credential presence check; for local servers it pings the models
// endpoint with a short timeout.
func (s *Summarizer) IsAvailable(ctx context.Context) bool {
	if s.name == ai.ProviderOpenAI {
		return s.apiKey != ""
	}

	ctx, cancel := context.WithTimeout(ctx, availabilityProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.host+"/models", nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		s.logger.Debug("availability probe failed", "host", s.host, "err", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

// Close releases resources held by the provider. Currently a no-op as
// the underlying client doesn't require explicit cleanup.
func (s *Summarizer) Close() error {
	s.logger.Debug("closing summarizer")
	return nil
}
