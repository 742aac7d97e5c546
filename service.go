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


// Package docmerge merges multi-format document sets into one
// summarized output artifact.
//
// The Service is the composition root: it wires the configured
// summarization provider, the document normalizer, the parallel
// orchestrator and the renderer behind a single Merge call.
package docmerge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/docmerge/ai"
	"github.com/poiesic/docmerge/ai/googleai"
	"github.com/poiesic/docmerge/ai/openai"
	"github.com/poiesic/docmerge/config"
	"github.com/poiesic/docmerge/core"
	"github.com/poiesic/docmerge/extract"
	"github.com/poiesic/docmerge/merge"
	"github.com/poiesic/docmerge/render"
)

// Service ties the pipeline stages together.
type Service struct {
	gateway      *ai.Gateway
	orchestrator *merge.Orchestrator
	renderer     *render.Renderer
	style        render.StyleConfig
	outputDir    string
	logger       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	summarizer ai.Summarizer
	logger     *slog.Logger
}

// WithSummarizer overrides the provider selected by the
// configuration. Tests use this to run the pipeline offline.
func WithSummarizer(summarizer ai.Summarizer) ServiceOption {
	return func(o *serviceOptions) {
		o.summarizer = summarizer
	}
}

// WithServiceLogger sets a custom logger. Default is slog.Default().
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a Service from the given configuration.
func New(ctx context.Context, cfg config.Config, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	summarizer := options.summarizer
	if summarizer == nil {
		var err error
		summarizer, err = newSummarizer(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	gateway, err := ai.NewGateway(summarizer,
		ai.WithRetryPolicy(retryPolicy(cfg)),
		ai.WithLogger(options.logger),
	)
	if err != nil {
		summarizer.Close()
		return nil, err
	}

	normalizer := extract.NewNormalizer(extract.WithLogger(options.logger))

	orchOpts := []merge.Option{
		merge.WithLogger(options.logger),
		merge.WithSummaryMaxLength(cfg.Summary.MaxLength),
	}
	if cfg.Pipeline.Workers > 0 {
		orchOpts = append(orchOpts, merge.WithWorkers(cfg.Pipeline.Workers))
	}
	if cfg.Pipeline.Deadline > 0 {
		orchOpts = append(orchOpts, merge.WithDeadline(cfg.Pipeline.Deadline))
	}

	orchestrator, err := merge.NewOrchestrator(normalizer, gateway, orchOpts...)
	if err != nil {
		gateway.Close()
		return nil, err
	}

	style := render.DefaultStyle()
	if cfg.Output.Title != "" {
		style.DocumentTitle = cfg.Output.Title
	}

	return &Service{
		gateway:      gateway,
		orchestrator: orchestrator,
		renderer:     render.NewRenderer(),
		style:        style,
		outputDir:    cfg.Output.Dir,
		logger:       options.logger,
	}, nil
}

func newSummarizer(ctx context.Context, cfg config.Config) (ai.Summarizer, error) {
	aiConfig := ai.NewConfig(
		ai.WithProvider(cfg.Provider.Name),
		ai.WithHost(cfg.Provider.Host),
		ai.WithModel(cfg.Provider.Model),
		ai.WithAPIKey(cfg.Provider.APIKey()),
		ai.WithMaxTokens(cfg.Summary.MaxTokens),
		ai.WithTemperature(cfg.Summary.Temperature),
		ai.WithMaxLength(cfg.Summary.MaxLength),
		ai.WithRequestTimeout(cfg.Provider.RequestTimeout),
	)
	aiConfig.Normalize()

	switch aiConfig.Provider {
	case ai.ProviderLocal, ai.ProviderOpenAI:
		return openai.NewSummarizer(aiConfig)
	case ai.ProviderGoogleAI:
		return googleai.NewSummarizer(ctx, aiConfig)
	default:
		return nil, errors.New("unknown provider " + aiConfig.Provider)
	}
}

func retryPolicy(cfg config.Config) ai.RetryPolicy {
	policy := ai.DefaultRetryPolicy()
	if cfg.Pipeline.RetryAttempts > 0 {
		policy.MaxAttempts = cfg.Pipeline.RetryAttempts
	}
	if cfg.Pipeline.RetryBase > 0 {
		policy.BaseDelay = cfg.Pipeline.RetryBase
	}
	if cfg.Pipeline.RetryMax > 0 {
		policy.MaxDelay = cfg.Pipeline.RetryMax
	}
	return policy
}

// Merge validates the request, runs every document set through the
// pipeline, renders the artifact and writes it to the output
// directory. It returns the merge result and the artifact path. A
// partially failed run still produces an artifact; per-set failures
// live in the result.
func (s *Service) Merge(ctx context.Context, req core.MergeRequest) (*core.MergeResult, string, error) {
	if err := core.ValidateRequest(req); err != nil {
		return nil, "", err
	}

	result, err := s.orchestrator.Run(ctx, req.DocumentSets)
	if err != nil {
		return nil, "", err
	}

	artifact, err := s.renderer.Render(result, s.style)
	if err != nil {
		return nil, "", err
	}

	outPath := filepath.Join(s.outputDir, req.OutputFile)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, artifact, 0o644); err != nil {
		return nil, "", fmt.Errorf("failed to write output artifact: %w", err)
	}

	s.logger.Info("merge complete",
		"sections", len(result.Sections),
		"failures", len(result.Failures),
		"output", outPath)
	return result, outPath, nil
}

// GenerateContent generates free-form content from a prompt through
// the configured provider, with the same retry semantics as
// summarization.
func (s *Service) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.gateway.GenerateContent(ctx, prompt)
}

// Provider returns the name of the configured summarization provider.
func (s *Service) Provider() string {
	return s.gateway.Provider()
}

// Close releases the orchestrator pool and the provider.
func (s *Service) Close() error {
	s.orchestrator.Release()
	if err := s.gateway.Close(); err != nil {
		s.logger.Error("error closing provider", "err", err)
		return err
	}
	return nil
}
