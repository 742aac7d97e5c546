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


package ai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/docmerge/core"
)

// ErrSummarizerRequired is returned when a Gateway is constructed
// without a provider.
var ErrSummarizerRequired = errors.New("summarizer required")

// minSummarizableLength is the shortest input worth sending to a
// provider; anything shorter is returned unchanged.
const minSummarizableLength = 50

// Gateway wraps a single configured Summarizer with retry and failure
// classification. It never tries multiple providers per call; any
// fallback happens inside the provider implementation itself.
type Gateway struct {
	summarizer Summarizer
	policy     RetryPolicy
	logger     *slog.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(policy RetryPolicy) GatewayOption {
	return func(g *Gateway) {
		g.policy = policy
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// NewGateway creates a Gateway over the given provider.
func NewGateway(summarizer Summarizer, opts ...GatewayOption) (*Gateway, error) {
	if summarizer == nil {
		return nil, ErrSummarizerRequired
	}
	g := &Gateway{
		summarizer: summarizer,
		policy:     DefaultRetryPolicy(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Provider returns the name of the configured provider.
func (g *Gateway) Provider() string {
	return g.summarizer.Name()
}

// IsAvailable probes the configured provider without incurring the
// cost of a full summarization call.
func (g *Gateway) IsAvailable(ctx context.Context) bool {
	return g.summarizer.IsAvailable(ctx)
}

// Close releases the underlying provider.
func (g *Gateway) Close() error {
	return g.summarizer.Close()
}

// Summarize summarizes normalized content, retrying transient failures
// per the gateway's policy. On success the result records the provider
// and the number of attempts used. On failure it returns a
// *core.SummarizationError; the result is nil, never an empty value.
func (g *Gateway) Summarize(ctx context.Context, content core.NormalizedContent, summaryType core.SummaryType, maxLength int) (*core.SummaryResult, error) {
	text := content.PlainText()

	// Too short to be worth a provider round trip; the original text
	// already is its own summary.
	if len(strings.TrimSpace(text)) < minSummarizableLength {
		return &core.SummaryResult{
			Text:     strings.TrimSpace(text),
			Provider: g.summarizer.Name(),
			Attempts: 0,
		}, nil
	}

	var summary string
	attempts, err := g.policy.Do(ctx, func() error {
		var callErr error
		summary, callErr = g.summarizer.Summarize(ctx, text, summaryType, maxLength)
		return callErr
	})
	if err != nil {
		g.logger.Warn("summarization failed",
			"provider", g.summarizer.Name(),
			"attempts", attempts,
			"err", err)
		return nil, &core.SummarizationError{Attempts: attempts, Cause: err}
	}

	return &core.SummaryResult{
		Text:     strings.TrimSpace(summary),
		Provider: g.summarizer.Name(),
		Attempts: attempts,
	}, nil
}

// GenerateContent generates free-form content from a prompt with the
// same retry semantics as Summarize. This is the non-merge content
// generation contract exposed to the outer layer.
func (g *Gateway) GenerateContent(ctx context.Context, prompt string) (string, error) {
	var content string
	attempts, err := g.policy.Do(ctx, func() error {
		var callErr error
		content, callErr = g.summarizer.GenerateContent(ctx, prompt)
		return callErr
	})
	if err != nil {
		return "", &core.SummarizationError{Attempts: attempts, Cause: err}
	}
	return content, nil
}
